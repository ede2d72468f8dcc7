package libav

import (
	"fmt"

	"github.com/asticode/go-astiav"
)

// ConvertRGB converts a decoded picture from its native pixel layout to a
// tightly packed, interleaved RGB24 raster of the same dimensions, using
// bilinear resampling where chroma subsampling requires it.
//
// The returned byte slice is Go-owned and holds exactly 3*width*height
// bytes in row-major order with no stride padding. The source picture is
// not mutated; disposal stays with the caller. The conversion context and
// the destination frame are transient and released on every path.
func ConvertRGB(p *Picture) (width, height int, pix []byte, err error) {
	src := p.frame

	ssc, err := astiav.CreateSoftwareScaleContext(
		src.Width(), src.Height(), src.PixelFormat(),
		src.Width(), src.Height(), astiav.PixelFormatRgb24,
		astiav.NewSoftwareScaleContextFlags(astiav.SoftwareScaleContextFlagBilinear),
	)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: %w", ErrConversionSetup, err)
	}
	defer ssc.Free()

	dst := astiav.AllocFrame()
	if dst == nil {
		return 0, 0, nil, fmt.Errorf("%w: cannot allocate raster frame", ErrBufferAlloc)
	}
	defer dst.Free()

	dst.SetWidth(src.Width())
	dst.SetHeight(src.Height())
	dst.SetPixelFormat(astiav.PixelFormatRgb24)
	if err := dst.AllocBuffer(0); err != nil {
		return 0, 0, nil, fmt.Errorf("%w: %w", ErrBufferAlloc, err)
	}

	if err := ssc.ScaleFrame(src, dst); err != nil {
		return 0, 0, nil, fmt.Errorf("%w: %w", ErrConversionSetup, err)
	}

	// Copying with alignment 1 strips the native row stride, so rows land
	// contiguously in the output.
	pix, err = dst.Data().Bytes(1)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("%w: %w", ErrBufferAlloc, err)
	}

	return src.Width(), src.Height(), pix, nil
}
