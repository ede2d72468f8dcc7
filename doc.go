// Package frameextract extracts single decoded pictures from video
// container files using FFmpeg's libav* libraries (via go-astiav).
//
// The package answers one question: "give me the Nth decoded picture of
// this file, as raw RGB". It opens a container, locates the first video
// stream, drives the packet-by-packet decode loop (end-of-stream flush
// included) until the requested ordinal is reached, converts that picture
// to interleaved RGB24 and hands it back as a Go-owned raster. A small CLI
// (cmd/getframe) wraps the pipeline for shell use.
//
// # Quick Start
//
// Extract picture 150 of a recording and save it as PPM:
//
//	src, err := frameextract.NewFileSource(frameextract.Config{
//	    Path: "recording.mp4",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := src.Open(); err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	pic, err := frameextract.Nth(src, 150)
//	if err != nil {
//	    log.Fatal(err) // includes ErrFrameNotFound for short files
//	}
//	defer pic.Close()
//
//	raster, err := frameextract.ToRGB(pic)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := frameextract.SavePPM("out.ppm", raster); err != nil {
//	    log.Fatal(err)
//	}
//
// # Frame Selection Semantics
//
// Ordinals are zero-based and counted in decode order over the first video
// stream only. Nth(src, 0) is the first decoded picture. Packets belonging
// to other streams are skipped, packets the decoder rejects are dropped
// and counted (a single malformed packet does not abort extraction), and
// after the container is exhausted the decoder is flushed and drained
// until empty, so pictures buffered for frame reordering still count.
// Requesting an ordinal beyond the end yields ErrFrameNotFound, which is
// the expected outcome for short files rather than a failure of the
// pipeline. Sources are single-pass: selecting a second ordinal requires a
// fresh FileSource.
//
// # Output Format
//
// Rasters are interleaved RGB24 with no row padding:
//
//   - Format: RGBRGBRGB..., row-major, top row first
//   - Size: Width × Height × 3 bytes
//   - Example (1080p): 1920 × 1080 × 3 = 6,220,800 bytes (~5.9 MB)
//
// SavePPM writes the fixed binary PPM (P6) layout:
//
//	P6\n<width> <height>\n255\n<payload>
//
// For PNG or JPEG output, convert through the stdlib image package:
//
//	img := raster.Image()
//	f, _ := os.Create("out.png")
//	defer f.Close()
//	png.Encode(f, img)
//
// # Error Handling
//
// Open-time failures are classified per stage and matchable with errors.Is:
// ErrContainerOpen, ErrStreamProbe, ErrNoVideoStream, ErrUnsupportedCodec,
// ErrDecoderInit. Conversion failures surface as ErrConversionSetup or
// ErrBufferAlloc. ErrFrameNotFound identifies a too-large ordinal. All of
// them wrap the underlying native error where one exists:
//
//	if err := src.Open(); err != nil {
//	    switch {
//	    case errors.Is(err, frameextract.ErrNoVideoStream):
//	        // audio-only file
//	    case errors.Is(err, frameextract.ErrUnsupportedCodec):
//	        // codec not built into the FFmpeg install
//	    }
//	}
//
// Per-packet decode rejections inside the walk are deliberately swallowed;
// they show up in Stats().UnitsRejected, not as errors.
//
// # Statistics
//
// Walk counters are available at any point, including after Close:
//
//	stats := src.Stats()
//	fmt.Printf("units: %d read, %d skipped, %d rejected\n",
//	    stats.UnitsRead, stats.UnitsSkipped, stats.UnitsRejected)
//	fmt.Printf("pictures: %d decoded (%d from flush)\n",
//	    stats.Decoded, stats.Flushed)
//
// Every Picture carries a Seq ordinal and a UUID TraceID that appear in the
// debug logs of each pipeline stage, so one picture can be traced from
// decode to disk.
//
// # Dependencies
//
// FFmpeg shared libraries (libavformat, libavcodec, libavutil, libswscale)
// must be installed; go-astiav binds them through cgo:
//
//	# Ubuntu/Debian
//	sudo apt-get install libavformat-dev libavcodec-dev libavutil-dev libswscale-dev
//
//	# Fedora/RHEL
//	sudo dnf install ffmpeg-free-devel
//
// Verify the installation:
//
//	pkg-config --modversion libavformat libavcodec libswscale
//
// # Concurrency Model
//
// The pipeline is deliberately single-threaded and synchronous: one
// container, one decoder, one walk, no goroutines, no timeouts, no
// retries. A FileSource is not safe for concurrent use. Independent
// FileSource instances over the same file are fully independent and may
// run in parallel from separate goroutines.
//
// # Limitations
//
//   - First video stream only (no stream selection)
//   - Sequential walk only (no seeking; cost is O(n) decodes for ordinal n)
//   - RGB24 output only
//   - No audio handling
//
// # CLI
//
// The getframe tool wraps the pipeline:
//
//	getframe recording.mp4 150 out.ppm
//	getframe -stats -debug recording.mp4 0 first.ppm
//
// Exit codes: 0 on success, 1 on pipeline failure (open, not found,
// conversion, write), 2 on usage errors. See cmd/getframe.
//
// # Project Context
//
// This tool is part of the Orion tooling family and exists to pull
// reference stills out of recorded footage for dataset curation and
// incident review. It follows the same design principle as the capture
// modules: "Complejidad por diseño, no por accidente".
//
// Repository: https://github.com/e7canasta/frame-extract
// License: Proprietary (Visiona Health)
package frameextract
