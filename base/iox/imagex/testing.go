// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether to overwrite the saved test
// images in [Assert] instead of comparing against them. It is set
// when the environment variable VPATH_UPDATE_TESTDATA is "true".
var UpdateTestImages = os.Getenv("VPATH_UPDATE_TESTDATA") == "true"

// AssertTolerance is the largest per channel difference that [Assert]
// accepts.
var AssertTolerance = 2

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// CompareColors returns true if no channel of the two colors differs
// by more than tol.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return int(absDiff(cc.R, ic.R)) <= tol && int(absDiff(cc.G, ic.G)) <= tol &&
		int(absDiff(cc.B, ic.B)) <= tol && int(absDiff(cc.A, ic.A)) <= tol
}

// DiffImage returns the difference between two images,
// with opaque pixels holding the per channel absolute difference.
func DiffImage(a, b image.Image) *image.RGBA {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			cc := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			di.SetRGBA(x, y, color.RGBA{absDiff(cc.R, ic.R), absDiff(cc.G, ic.G), absDiff(cc.B, ic.B), 0xff})
		}
	}
	return di
}

// Assert checks that img matches the image saved at the given name in
// the testdata directory, with ".png" added unless the name ends in an
// image extension (eg: "circle" becomes "testdata/circle.png" and
// "circle-0.5" becomes "testdata/circle-0.5.png").
// A missing image is created. On mismatch the test fails, and the
// rendered image and the difference are saved next to the expected
// one with .fail and .diff inserted before the extension.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if _, err := ExtToFormat(filepath.Ext(filename)); err != nil {
		filename += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("imagex.Assert: error making testdata directory: %v", err)
		return
	}
	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffFilename := strings.TrimSuffix(filename, ext) + ".diff" + ext

	fimg, _, err := Open(filename)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: error saving image: %v", err)
		}
		os.Remove(failFilename)
		os.Remove(diffFilename)
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: error opening saved image: %v", err)
		return
	}

	if msg := mismatch(img, fimg); msg != "" {
		t.Errorf("imagex.Assert: image for %s is not the same as expected; see %s: %s", filename, failFilename, msg)
		if err := Save(img, failFilename); err != nil {
			t.Errorf("imagex.Assert: error saving fail image: %v", err)
		}
		if img.Bounds() == fimg.Bounds() {
			if err := Save(DiffImage(img, fimg), diffFilename); err != nil {
				t.Errorf("imagex.Assert: error saving diff image: %v", err)
			}
		}
		return
	}
	os.Remove(failFilename)
	os.Remove(diffFilename)
}

// mismatch describes the first difference between img and the
// expected image, or returns "" if they match.
func mismatch(img, expected image.Image) string {
	ib, eb := img.Bounds(), expected.Bounds()
	if ib != eb {
		return fmt.Sprintf("expected bounds %v, got %v", eb, ib)
	}
	for y := ib.Min.Y; y < ib.Max.Y; y++ {
		for x := ib.Min.X; x < ib.Max.X; x++ {
			cc := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(expected.At(x, y)).(color.RGBA)
			if !CompareColors(cc, ic, AssertTolerance) {
				return fmt.Sprintf("expected color %v at (%d, %d), got %v", ic, x, y, cc)
			}
		}
	}
	return ""
}
