package scripts

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// ThumbWidth is the width of generated thumbnails; height keeps the aspect
// ratio.
const ThumbWidth = 480

func thumbName(file string) string {
	ext := filepath.Ext(file)
	return strings.TrimSuffix(file, ext) + "_thumb" + ext
}

func compressImage(inputPath string, outputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return err
	}

	if format != "jpeg" && format != "png" {
		return fmt.Errorf("unsupported format for file: %s", inputPath)
	}

	m := resize.Resize(ThumbWidth, 0, img, resize.Lanczos3)

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if format == "jpeg" {
		err = jpeg.Encode(out, m, &jpeg.Options{Quality: 85})
	} else {
		err = png.Encode(out, m)
	}

	return err
}
