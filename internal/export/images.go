package export

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	ioutils "github.com/turbogarage/garage/internal/io"
	"github.com/turbogarage/garage/internal/model"
)

// DumpImages writes every attached car image to dir as a standalone
// file, named after the car.
//
// Cars without an image are skipped. Images are written concurrently,
// at most maxConcurrent at a time (a value below 1 means unlimited).
// Returns the number of images written; a car whose image fails to
// decode or write aborts the dump.
//
// Example:
//
//	n, err := export.DumpImages(ctx, mgr.Snapshot(), "/exports/images", 4)
func DumpImages(ctx context.Context, cars []model.Car, dir string, maxConcurrent int) (int, error) {
	if err := ioutils.EnsureDir(dir); err != nil {
		return 0, fmt.Errorf("failed to create export directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	if maxConcurrent > 0 {
		g.SetLimit(maxConcurrent)
	}

	var written int32
	for _, car := range cars {
		if car.Image == "" {
			continue
		}
		car := car
		g.Go(func() error {
			data, ext, err := ioutils.DecodeDataURI(car.Image)
			if err != nil {
				if errors.Is(err, ioutils.ErrNotDataURI) {
					return fmt.Errorf("car %s has an unreadable image", car.ID)
				}
				return fmt.Errorf("car %s: %w", car.ID, err)
			}

			name := ioutils.SanitizeFileName(fmt.Sprintf("%s %s", car.ID, car.Name)) + ext
			if err := ioutils.WriteFile(ctx, filepath.Join(dir, name), data); err != nil {
				return fmt.Errorf("failed to write image for %s: %w", car.ID, err)
			}

			atomic.AddInt32(&written, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(atomic.LoadInt32(&written)), err
	}
	return int(written), nil
}
