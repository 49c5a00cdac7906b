package record

import (
	"testing"

	"github.com/nerrad567/easycontrols-gateway/internal/frame"
	"github.com/nerrad567/easycontrols-gateway/internal/parameter"
)

// fullFrame returns a frame carrying a value for every registered label.
func fullFrame() *frame.Frame {
	f := frame.New("en")
	for _, d := range parameter.All() {
		switch d.Kind {
		case parameter.KindString:
			f.Set(d.Label, "text")
		case parameter.KindDate:
			f.Set(d.Label, "01.01.2026")
		case parameter.KindTimeOfDay:
			f.Set(d.Label, "12:00")
		default:
			f.Set(d.Label, "1")
		}
	}
	return f
}

// ─── Update ─────────────────────────────────────────────────────────

func BenchmarkUpdate_FullFrame(b *testing.B) {
	f := fullFrame()
	r := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Update(f)
	}
}

func BenchmarkUpdate_SingleLabel(b *testing.B) {
	f := frameOf("v00104", "12.5")
	r := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Update(f)
	}
}

// ─── Store ──────────────────────────────────────────────────────────

func BenchmarkStore_Apply(b *testing.B) {
	f := fullFrame()
	s := NewStore()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Apply(f)
	}
}

func BenchmarkStore_Load(b *testing.B) {
	s := NewStore()
	s.Apply(fullFrame())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Load()
	}
}

func BenchmarkMetrics(b *testing.B) {
	r := New()
	r.Update(fullFrame())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Metrics()
	}
}
