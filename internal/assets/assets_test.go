package assets

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// glb builds a minimal binary glTF container with the given payload.
func glb(payload []byte) []byte {
	data := make([]byte, glbHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(data[0:4], glbMagic)
	binary.LittleEndian.PutUint32(data[4:8], glbVersion)
	binary.LittleEndian.PutUint32(data[8:12], uint32(len(data)))
	copy(data[glbHeaderSize:], payload)
	return data
}

type fakeDecoder struct {
	failModels      map[string]bool
	nextID          uint32
	unloadedModels  int
	unloadedTexture int
}

func (d *fakeDecoder) DecodeModel(ref string, data []byte) (rl.Model, rl.BoundingBox, error) {
	if d.failModels[ref] {
		return rl.Model{}, rl.BoundingBox{}, errors.New("broken mesh")
	}
	bounds := rl.BoundingBox{Min: rl.Vector3{X: -1, Y: -1, Z: -1}, Max: rl.Vector3{X: 1, Y: 1, Z: 1}}
	return rl.Model{MeshCount: 1}, bounds, nil
}

func (d *fakeDecoder) DecodeTexture(ref string, data []byte) (rl.Texture2D, error) {
	d.nextID++
	return rl.Texture2D{ID: d.nextID, Width: 4, Height: 4}, nil
}

func (d *fakeDecoder) UnloadModel(rl.Model)       { d.unloadedModels++ }
func (d *fakeDecoder) UnloadTexture(rl.Texture2D) { d.unloadedTexture++ }

func drain(t *testing.T, l *Loader) []Completion {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, err := l.Drain(ctx)
	if err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	return out
}

func byRef(completions []Completion) map[string]Completion {
	m := make(map[string]Completion, len(completions))
	for _, c := range completions {
		m[c.Ref] = c
	}
	return m
}

func TestLoaderModelAndTexture(t *testing.T) {
	fsys := fstest.MapFS{
		"models/earth.glb":   {Data: glb([]byte("mesh"))},
		"textures/stars.jpg": {Data: []byte("jpeg")},
	}
	dec := &fakeDecoder{}
	l := NewLoader(fsys, dec)

	l.LoadModel("models/earth.glb")
	l.LoadTexture("textures/stars.jpg")

	if l.Pending() != 2 {
		t.Errorf("Expected 2 pending requests, got %d", l.Pending())
	}

	got := byRef(drain(t, l))
	if len(got) != 2 {
		t.Fatalf("Expected 2 completions, got %d", len(got))
	}

	model := got["models/earth.glb"]
	if model.Err != nil || model.Kind != KindModel || model.Model.MeshCount != 1 {
		t.Errorf("Unexpected model completion %+v", model)
	}
	tex := got["textures/stars.jpg"]
	if tex.Err != nil || tex.Kind != KindTexture || tex.Texture.ID == 0 {
		t.Errorf("Unexpected texture completion %+v", tex)
	}
	if l.Pending() != 0 {
		t.Errorf("Expected no pending requests, got %d", l.Pending())
	}

	l.Unload()
	if dec.unloadedModels != 1 || dec.unloadedTexture != 1 {
		t.Errorf("Unload released %d models and %d textures", dec.unloadedModels, dec.unloadedTexture)
	}
}

func TestLoaderReportsFailures(t *testing.T) {
	fsys := fstest.MapFS{
		"models/corrupt.glb": {Data: []byte("not a glb at all")},
		"models/broken.glb":  {Data: glb(nil)},
	}
	dec := &fakeDecoder{failModels: map[string]bool{"models/broken.glb": true}}
	l := NewLoader(fsys, dec)

	l.LoadModel("models/missing.glb")
	l.LoadModel("models/corrupt.glb")
	l.LoadModel("models/broken.glb")

	got := byRef(drain(t, l))
	for ref, c := range got {
		if c.Err == nil {
			t.Errorf("%s: expected an error", ref)
		}
	}
	if !errors.Is(got["models/corrupt.glb"].Err, ErrInvalidGLB) {
		t.Errorf("Corrupt file should fail header validation, got %v", got["models/corrupt.glb"].Err)
	}

	l.Unload()
	if dec.unloadedModels != 0 {
		t.Errorf("Failed loads must not be unloaded, got %d", dec.unloadedModels)
	}
}

func TestLoaderPollDoesNotBlock(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, &fakeDecoder{})

	if got := l.Poll(); len(got) != 0 {
		t.Errorf("Expected no completions, got %d", len(got))
	}

	l.LoadTexture("missing.png")
	deadline := time.Now().Add(5 * time.Second)
	var got []Completion
	for len(got) == 0 && time.Now().Before(deadline) {
		got = l.Poll()
		time.Sleep(time.Millisecond)
	}
	if len(got) != 1 || got[0].Err == nil {
		t.Errorf("Expected one failed completion, got %+v", got)
	}
}

func TestLoaderDrainHonorsContext(t *testing.T) {
	l := NewLoader(fstest.MapFS{}, &fakeDecoder{})
	l.pending = 1 // a request that never resolves

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := l.Drain(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline error, got %v", err)
	}
}

func TestCheckGLB(t *testing.T) {
	if err := CheckGLB(glb([]byte("payload"))); err != nil {
		t.Errorf("Valid container rejected: %v", err)
	}

	short := []byte("glTF")
	badVersion := glb(nil)
	binary.LittleEndian.PutUint32(badVersion[4:8], 1)
	truncated := glb([]byte("payload"))
	truncated = truncated[:len(truncated)-2]

	for name, data := range map[string][]byte{
		"short":     short,
		"version":   badVersion,
		"truncated": truncated,
	} {
		if err := CheckGLB(data); !errors.Is(err, ErrInvalidGLB) {
			t.Errorf("%s: expected ErrInvalidGLB, got %v", name, err)
		}
	}
}

func TestLookupColor(t *testing.T) {
	if LookupColor("SkyBlue") != rl.SkyBlue {
		t.Error("LookupColor should resolve known names")
	}
	if LookupColor("Octarine") != rl.White {
		t.Error("Unknown colors should fall back to white")
	}
	if IsColorName("Octarine") || !IsColorName("White") {
		t.Error("IsColorName mismatch")
	}
}
