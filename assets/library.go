// Package assets resolves tile content images.
//
// Images are decoded on background goroutines and handed to callers on the
// frame thread through Poll, so tiles can be created before their texture
// exists.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"
)

// Decoder produces the image for a content index.
type Decoder func(index int) (image.Image, error)

type result struct {
	index int
	img   image.Image
	err   error
}

// Library caches decoded images by content index.
type Library struct {
	count   int
	decode  Decoder
	sem     *semaphore.Weighted
	results chan result

	images  map[int]*ebiten.Image
	waiting map[int][]func(*ebiten.Image)

	// convert turns a decoded image into a texture; replaced in tests.
	convert func(image.Image) *ebiten.Image
}

// NewLibrary creates a library for count images. At most workers decodes
// run at once.
func NewLibrary(count int, decode Decoder, workers int) *Library {
	if workers < 1 {
		workers = 1
	}
	return &Library{
		count:   count,
		decode:  decode,
		sem:     semaphore.NewWeighted(int64(workers)),
		results: make(chan result, count+1),
		images:  make(map[int]*ebiten.Image),
		waiting: make(map[int][]func(*ebiten.Image)),
		convert: ebiten.NewImageFromImage,
	}
}

// Files returns a decoder reading paths from disk. Format support covers
// png, jpeg, bmp and webp.
func Files(paths []string) Decoder {
	return func(index int) (image.Image, error) {
		if index < 0 || index >= len(paths) {
			return nil, fmt.Errorf("image index %d out of range", index)
		}
		f, err := os.Open(paths[index])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", paths[index], err)
		}
		return img, nil
	}
}

func (l *Library) Len() int { return l.count }

// Request delivers the image for index to done. Cached images are delivered
// immediately; otherwise done runs from a later Poll.
func (l *Library) Request(index int, done func(*ebiten.Image)) {
	if img, ok := l.images[index]; ok {
		done(img)
		return
	}
	pending, inFlight := l.waiting[index]
	l.waiting[index] = append(pending, done)
	if inFlight {
		return
	}
	go l.load(index)
}

func (l *Library) load(index int) {
	if err := l.sem.Acquire(context.Background(), 1); err != nil {
		l.results <- result{index: index, err: err}
		return
	}
	defer l.sem.Release(1)

	img, err := l.decode(index)
	l.results <- result{index: index, img: img, err: err}
}

// Poll attaches finished decodes and runs their callbacks. It never blocks.
func (l *Library) Poll() int {
	delivered := 0
	for {
		select {
		case r := <-l.results:
			img := l.attach(r)
			for _, fn := range l.waiting[r.index] {
				fn(img)
				delivered++
			}
			delete(l.waiting, r.index)
		default:
			return delivered
		}
	}
}

func (l *Library) attach(r result) *ebiten.Image {
	src := r.img
	if r.err != nil {
		log.Println("assets: image", r.index, "failed, using placeholder:", r.err)
		src = Placeholder(r.index, l.count, 240, 360)
	}
	img := l.convert(src)
	l.images[r.index] = img
	return img
}

// Pending reports how many indices are still decoding.
func (l *Library) Pending() int {
	return len(l.waiting)
}
