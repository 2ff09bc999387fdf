package view

import (
	"image"

	"github.com/soocke/match-overlay-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PreviewView hosts the annotated capture preview. Frames arrive fully
// composed (scaled image, letterbox bars, detection boxes) from the renderer;
// the view only swaps the label photo.
type PreviewView interface {
	// Update pushes a composed frame to the label.
	Update(img image.Image)
	// Reset restores the empty placeholder.
	Reset()
	// ContainerSize returns the fixed pixel size frames are composed for.
	ContainerSize() (w, h int)
}

type previewView struct {
	label     *LabelWidget
	width     int
	height    int
	prevPhoto *Img // last Tk photo instance, disposed before each swap
}

// NewPreviewView creates the preview label gridded at row inside parent. The
// container size is fixed; the renderer letterboxes frames into it.
func NewPreviewView(parent *FrameWidget, row, width, height int) PreviewView {
	if width <= 0 || height <= 0 {
		width, height = 640, 360
	}
	v := &previewView{width: width, height: height}
	photo := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, width, height)))))
	v.prevPhoto = photo
	v.label = Label(Image(photo), Borderwidth(1), Relief("sunken"))
	if parent != nil {
		Grid(v.label, In(parent), Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	} else {
		Grid(v.label, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	}
	return v
}

func (v *previewView) Update(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace the previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}

func (v *previewView) Reset() {
	if v == nil || v.label == nil {
		return
	}
	v.Update(image.NewRGBA(image.Rect(0, 0, v.width, v.height)))
}

func (v *previewView) ContainerSize() (int, int) {
	if v == nil {
		return 0, 0
	}
	return v.width, v.height
}
