package assets

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Color name mapping for config files
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
	"Magenta":   rl.Magenta,
}

// LookupColor returns a raylib color from a name string
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// IsColorName reports whether name is a known color.
func IsColorName(name string) bool {
	_, ok := colorByName[name]
	return ok
}

type Kind int

const (
	KindModel Kind = iota
	KindTexture
)

func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindTexture:
		return "texture"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Completion is the outcome of one load request. Exactly one of Model or
// Texture is meaningful, picked by Kind, and only when Err is nil.
type Completion struct {
	Ref     string
	Kind    Kind
	Model   rl.Model
	Bounds  rl.BoundingBox
	Texture rl.Texture2D
	Err     error
}

// Decoder turns fetched bytes into GPU resources. It is only called from Poll,
// so implementations may assume the thread owning the GL context.
type Decoder interface {
	DecodeModel(ref string, data []byte) (rl.Model, rl.BoundingBox, error)
	DecodeTexture(ref string, data []byte) (rl.Texture2D, error)
	UnloadModel(model rl.Model)
	UnloadTexture(texture rl.Texture2D)
}

type fetched struct {
	ref  string
	kind Kind
	data []byte
	err  error
}

// Loader fetches resources in the background and hands them back, decoded,
// through Poll. Requests are never cancelled and never time out.
//
// LoadModel, LoadTexture, Poll, Drain and Unload must be called from the same
// goroutine; only file reads run elsewhere.
type Loader struct {
	fsys    fs.FS
	decoder Decoder
	results chan fetched
	pending int

	models   []rl.Model
	textures []rl.Texture2D
}

func NewLoader(fsys fs.FS, decoder Decoder) *Loader {
	return &Loader{
		fsys:    fsys,
		decoder: decoder,
		results: make(chan fetched, 64),
	}
}

// LoadModel requests the model at ref. The result arrives from a later Poll.
func (l *Loader) LoadModel(ref string) {
	l.request(ref, KindModel)
}

// LoadTexture requests the image at ref. The result arrives from a later Poll.
func (l *Loader) LoadTexture(ref string) {
	l.request(ref, KindTexture)
}

// Pending returns the number of requests whose completion has not been polled.
func (l *Loader) Pending() int {
	return l.pending
}

func (l *Loader) request(ref string, kind Kind) {
	l.pending++
	go func() {
		data, err := l.fetch(ref, kind)
		l.results <- fetched{ref: ref, kind: kind, data: data, err: err}
	}()
}

func (l *Loader) fetch(ref string, kind Kind) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, ref)
	if err != nil {
		return nil, err
	}
	if kind == KindModel && strings.EqualFold(path.Ext(ref), ".glb") {
		if err := CheckGLB(data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// Poll returns every completion that arrived since the last call without
// blocking. Order follows arrival, not request order.
func (l *Loader) Poll() []Completion {
	var out []Completion
	for {
		select {
		case f := <-l.results:
			out = append(out, l.complete(f))
		default:
			return out
		}
	}
}

// Drain blocks until every outstanding request has completed or ctx is done.
func (l *Loader) Drain(ctx context.Context) ([]Completion, error) {
	var out []Completion
	for l.pending > 0 {
		select {
		case f := <-l.results:
			out = append(out, l.complete(f))
		case <-ctx.Done():
			return out, ctx.Err()
		}
	}
	return out, nil
}

func (l *Loader) complete(f fetched) Completion {
	l.pending--
	c := Completion{Ref: f.ref, Kind: f.kind}
	if f.err != nil {
		c.Err = fmt.Errorf("load %s %s: %w", f.kind, f.ref, f.err)
		return c
	}

	var err error
	switch f.kind {
	case KindModel:
		c.Model, c.Bounds, err = l.decoder.DecodeModel(f.ref, f.data)
		if err == nil {
			l.models = append(l.models, c.Model)
		}
	case KindTexture:
		c.Texture, err = l.decoder.DecodeTexture(f.ref, f.data)
		if err == nil {
			l.textures = append(l.textures, c.Texture)
		}
	}
	if err != nil {
		c.Err = fmt.Errorf("decode %s %s: %w", f.kind, f.ref, err)
	}
	return c
}

// Unload releases every resource decoded so far.
func (l *Loader) Unload() {
	for _, model := range l.models {
		l.decoder.UnloadModel(model)
	}
	for _, texture := range l.textures {
		l.decoder.UnloadTexture(texture)
	}
	l.models = nil
	l.textures = nil
}
