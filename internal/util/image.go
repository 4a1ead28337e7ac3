package util

import (
	"bytes"
	"io"

	"github.com/disintegration/imaging"
)

// PfpSize 头像统一归一到的正方形边长
const PfpSize = 256

// MaxImageBound 内容图片的最大边长，超出时等比缩小
const MaxImageBound = 1024

// ResizeSquare 将图片缩放为固定边长的正方形，输出PNG，不保持宽高比
func ResizeSquare(reader io.Reader, size int) (*bytes.Buffer, error) {
	img, err := imaging.Decode(reader)
	if err != nil {
		return nil, err
	}

	resized := imaging.Resize(img, size, size, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, resized, imaging.PNG); err != nil {
		return nil, err
	}
	return buf, nil
}

// BoundImage 等比缩小图片到不超过 bound x bound，小图保持原样
func BoundImage(reader io.Reader, bound int) (*bytes.Buffer, error) {
	img, err := imaging.Decode(reader)
	if err != nil {
		return nil, err
	}

	if img.Bounds().Dx() > bound || img.Bounds().Dy() > bound {
		img = imaging.Fit(img, bound, bound, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf, nil
}
