package functions

import (
	"errors"
	"testing"

	"github.com/franela/goblin"
	"github.com/google/uuid"
	"github.com/thebartekbanach/blitline/pkg/location"
	"github.com/thebartekbanach/blitline/pkg/validate"
)

func TestContrastStretchChannel(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("ContrastStretchChannel", func() {
		g.It("Should reject negative black point", func() {
			fn, err := NewContrastStretchChannel(-1)

			g.Assert(fn == nil).IsTrue()
			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
		})

		g.It("Should accept zero black point", func() {
			fn, err := NewContrastStretchChannel(0)

			g.Assert(err).IsNil()
			g.Assert(fn.Params()).Equal(map[string]interface{}{"black_point": 0})
		})

		g.It("Should have constant name", func() {
			fn, _ := NewContrastStretchChannel(10)
			g.Assert(fn.Name()).Equal("contrast_stretch_channel")
		})

		g.It("Should reject white point not greater than black point", func() {
			fn, _ := NewContrastStretchChannel(10)

			for _, whitePoint := range []int{5, 10} {
				result, err := fn.WhitePoint(whitePoint)

				g.Assert(result == nil).IsTrue()
				g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
			}
		})

		g.It("Should keep parameters untouched after failed white point", func() {
			fn, _ := NewContrastStretchChannel(10)
			fn.WhitePoint(20)
			fn.WhitePoint(5)

			g.Assert(fn.Params()).Equal(map[string]interface{}{
				"black_point": 10,
				"white_point": 20,
			})
		})

		g.It("Should expose both points after valid white point", func() {
			fn, _ := NewContrastStretchChannel(10)
			result, err := fn.WhitePoint(20)

			g.Assert(err).IsNil()
			g.Assert(result == fn).IsTrue()
			g.Assert(fn.Params()).Equal(map[string]interface{}{
				"black_point": 10,
				"white_point": 20,
			})
		})

		g.It("Should not allow mutating parameters through returned map", func() {
			fn, _ := NewContrastStretchChannel(10)
			params := fn.Params()
			params["black_point"] = -5

			g.Assert(fn.Params()["black_point"]).Equal(10)
		})
	})
}

func TestFunctionVariants(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("ResizeToFit", func() {
		g.It("Should store only given dimensions", func() {
			fn, err := NewResizeToFit(100, 0)

			g.Assert(err).IsNil()
			g.Assert(fn.Name()).Equal("resize_to_fit")
			g.Assert(fn.Params()).Equal(map[string]interface{}{"width": 100})
		})

		g.It("Should reject missing or negative dimensions", func() {
			for _, dims := range [][2]int{{0, 0}, {-1, 100}, {100, -1}} {
				_, err := NewResizeToFit(dims[0], dims[1])
				g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
			}
		})

		g.It("Should set only shrink larger flag", func() {
			fn, _ := NewResizeToFit(100, 200)
			fn.OnlyShrinkLarger(true)

			g.Assert(fn.Params()).Equal(map[string]interface{}{
				"width":              100,
				"height":             200,
				"only_shrink_larger": true,
			})
		})
	})

	g.Describe("Crop", func() {
		g.It("Should store crop box", func() {
			fn, err := NewCrop(0, 10, 50, 60)

			g.Assert(err).IsNil()
			g.Assert(fn.Name()).Equal("crop")
			g.Assert(fn.Params()).Equal(map[string]interface{}{
				"x":      0,
				"y":      10,
				"width":  50,
				"height": 60,
			})
		})

		g.It("Should reject negative origin and empty size", func() {
			_, err := NewCrop(-1, 0, 10, 10)
			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()

			_, err = NewCrop(0, 0, 0, 10)
			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
		})

		g.It("Should accept only known gravities", func() {
			fn, _ := NewCrop(0, 0, 10, 10)

			_, err := fn.Gravity("UpGravity")
			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
			g.Assert(fn.Params()["gravity"] == nil).IsTrue()

			_, err = fn.Gravity("CenterGravity")
			g.Assert(err).IsNil()
			g.Assert(fn.Params()["gravity"]).Equal("CenterGravity")
		})
	})

	g.Describe("Rotate", func() {
		g.It("Should accept amounts within full turn", func() {
			fn, err := NewRotate(-90.5)

			g.Assert(err).IsNil()
			g.Assert(fn.Name()).Equal("rotate")
			g.Assert(fn.Params()).Equal(map[string]interface{}{"amount": -90.5})
		})

		g.It("Should reject amounts above full turn", func() {
			_, err := NewRotate(361)
			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
		})
	})

	g.Describe("Pad", func() {
		g.It("Should normalize color", func() {
			fn, err := NewPad(5, "#FFF")

			g.Assert(err).IsNil()
			g.Assert(fn.Name()).Equal("pad")
			g.Assert(fn.Params()).Equal(map[string]interface{}{
				"size":  5,
				"color": "#ffffff",
			})
		})

		g.It("Should reject invalid colors and sizes", func() {
			_, err := NewPad(5, "white")
			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()

			_, err = NewPad(0, "#000000")
			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
		})
	})

	g.Describe("NoOp", func() {
		g.It("Should have no params", func() {
			fn := NewNoOp()

			g.Assert(fn.Name()).Equal("no_op")
			g.Assert(len(fn.Params())).Equal(0)
		})
	})
}

func TestDescriptor(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("Save", func() {
		g.It("Should reject empty identifier", func() {
			fn := NewNoOp()
			err := fn.SaveAs("", nil)

			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
			g.Assert(fn.Save() == nil).IsTrue()
		})

		g.It("Should store identifier and destination", func() {
			fn := NewNoOp()
			dest := location.MustParse("s3://bucket/out/image.jpg")

			g.Assert(fn.SaveAs("thumb", dest)).IsNil()
			g.Assert(fn.Save().ImageIdentifier).Equal("thumb")
			g.Assert(fn.Save().Destination.Equal(dest)).IsTrue()
		})

		g.It("Should generate random identifier", func() {
			fn := NewNoOp()
			identifier := fn.SaveWithGeneratedIdentifier(nil)

			_, err := uuid.Parse(identifier)
			g.Assert(err).IsNil()
			g.Assert(fn.Save().ImageIdentifier).Equal(identifier)
		})

		g.It("Should validate quality", func() {
			save, _ := NewSave("thumb", nil)

			_, err := save.WithQuality(0)
			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
			g.Assert(save.Quality).Equal(0)

			_, err = save.WithQuality(85)
			g.Assert(err).IsNil()
			g.Assert(save.Quality).Equal(85)
		})
	})

	g.Describe("AddFunction", func() {
		g.It("Should chain child functions in order", func() {
			parent, _ := NewResizeToFit(100, 100)
			first := NewNoOp()
			second, _ := NewRotate(90)

			g.Assert(parent.AddFunction(first)).IsNil()
			g.Assert(parent.AddFunction(second)).IsNil()

			children := parent.Functions()
			g.Assert(len(children)).Equal(2)
			g.Assert(children[0].Name()).Equal("no_op")
			g.Assert(children[1].Name()).Equal("rotate")
		})

		g.It("Should reject nil child", func() {
			parent := NewNoOp()
			err := parent.AddFunction(nil)

			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
			g.Assert(len(parent.Functions())).Equal(0)
		})

		g.It("Should reject child holding nil pointer", func() {
			parent := NewNoOp()
			err := parent.AddFunction((*Rotate)(nil))

			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
			g.Assert(len(parent.Functions())).Equal(0)
		})
	})

	g.Describe("IsNil", func() {
		g.It("Should detect untyped and typed nil functions", func() {
			var stretch *ContrastStretchChannel

			g.Assert(IsNil(nil)).IsTrue()
			g.Assert(IsNil(stretch)).IsTrue()
			g.Assert(IsNil(NewNoOp())).IsFalse()
		})
	})

	g.Describe("Zero values", func() {
		g.It("Should set parameters on zero value descriptors", func() {
			stretch, err := (&ContrastStretchChannel{}).WhitePoint(5)
			g.Assert(err).IsNil()
			g.Assert(stretch.Params()).Equal(map[string]interface{}{"white_point": 5})

			resize := (&ResizeToFit{}).OnlyShrinkLarger(true)
			g.Assert(resize.Params()).Equal(map[string]interface{}{"only_shrink_larger": true})
		})

		g.It("Should reject white point not above zero on zero value", func() {
			stretch := &ContrastStretchChannel{}
			_, err := stretch.WhitePoint(0)

			g.Assert(errors.Is(err, validate.ErrInvalidArgument)).IsTrue()
			g.Assert(len(stretch.Params())).Equal(0)
		})
	})
}
