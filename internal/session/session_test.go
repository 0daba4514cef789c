package session_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/perf"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/session"
)

// countingRand returns 0, 1, 2, ... modulo n.
type countingRand struct{ next int }

func (r *countingRand) Intn(n int) int {
	v := r.next % n
	r.next++
	return v
}

// tickClock advances one millisecond per reading.
func tickClock() perf.Clock {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(time.Millisecond)
		return t
	}
}

func drain(s *session.Session) {
	for i := 0; i < 10000 && !s.Completed(); i++ {
		s.Tick()
	}
}

var _ = Describe("Session", func() {
	var (
		s    *session.Session
		logs *observer.ObservedLogs
	)

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zap.DebugLevel)
		s = session.New(nil).
			WithLogger(zap.New(core)).
			WithRand(&countingRand{}).
			WithMeter(perf.NewMeter(1).WithClock(tickClock()))
	})

	Describe("initial state", func() {
		It("starts with 20 values in [1, 100]", func() {
			Expect(s.Values()).To(HaveLen(20))
			for _, v := range s.Values() {
				Expect(v).To(BeNumerically(">=", 1))
				Expect(v).To(BeNumerically("<=", 100))
			}
			Expect(s.Original()).To(Equal(s.Values()))
		})

		It("has no selection and no timings", func() {
			_, ok := s.Selected()
			Expect(ok).To(BeFalse())
			Expect(s.Timings()).To(BeEmpty())
			Expect(s.Target()).To(Equal(50))
			Expect(s.TargetVisible()).To(BeFalse())
		})

		It("uses configured values", func() {
			cfg := config.DefaultConfig()
			cfg.Values = []int{4, 2}
			cfg.Algorithm = "Merge Sort"
			s := session.New(cfg)
			Expect(s.Values()).To(Equal([]int{4, 2}))
			info, ok := s.Selected()
			Expect(ok).To(BeTrue())
			Expect(info.Name).To(Equal("merge"))
		})
	})

	Describe("Enter", func() {
		It("replaces the array from the numbers field", func() {
			s.SetNumbers(" 5, 3,, 9 ,")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Values()).To(Equal([]int{5, 3, 9}))
			Expect(s.Original()).To(Equal([]int{5, 3, 9}))
			Expect(s.Numbers()).To(BeEmpty())
		})

		It("prefers numbers over size", func() {
			s.SetNumbers("1,2")
			s.SetSize("7")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Values()).To(Equal([]int{1, 2}))
			Expect(s.Size()).To(BeEmpty())
		})

		It("rejects non-integer numbers and keeps the array", func() {
			before := append([]int(nil), s.Values()...)
			s.SetNumbers("1, two, 3")
			s.SetSize("4")
			err := s.Enter()
			Expect(err).To(MatchError(session.ErrInvalidNumbers))
			Expect(s.Values()).To(Equal(before))
			Expect(s.Numbers()).To(BeEmpty())
			Expect(s.Size()).To(BeEmpty())
			Expect(logs.FilterLevelExact(zap.WarnLevel).Len()).To(Equal(1))
		})

		It("warns when only separators are given", func() {
			s.SetNumbers(" , ,")
			Expect(s.Enter()).To(MatchError(session.ErrNoNumbers))
		})

		It("generates a random array of the requested size", func() {
			Expect(s.Values()[:3]).To(Equal([]int{1, 2, 3}))
			s.SetSize(" 5 ")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Values()).To(Equal([]int{21, 22, 23, 24, 25}))
		})

		It("caps random arrays at 100 values", func() {
			s.SetSize("250")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Values()).To(HaveLen(100))
		})

		It("rejects a non-integer size", func() {
			s.SetSize("ten")
			Expect(s.Enter()).To(MatchError(session.ErrInvalidSize))
			Expect(s.Values()).To(HaveLen(20))
		})

		It("rejects a non-positive size", func() {
			s.SetSize("0")
			Expect(s.Enter()).To(MatchError(session.ErrNonPositiveSize))
			s.SetSize("-3")
			Expect(s.Enter()).To(MatchError(session.ErrNonPositiveSize))
			Expect(logs.FilterLevelExact(zap.WarnLevel).Len()).To(Equal(2))
		})

		It("stops a running animation only when the array is replaced", func() {
			s.SetNumbers("5,4,3,2,1")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Select("bubble")).To(Succeed())
			Expect(s.Launch()).To(Succeed())
			s.Tick()
			Expect(s.Running()).To(BeTrue())
			Expect(s.Values()).To(Equal([]int{4, 5, 3, 2, 1}))

			s.SetNumbers("5, x")
			Expect(s.Enter()).To(MatchError(session.ErrInvalidNumbers))
			Expect(s.Running()).To(BeTrue())
			Expect(s.Values()).To(Equal([]int{4, 5, 3, 2, 1}))
			s.Tick()
			Expect(s.Values()).To(Equal([]int{4, 3, 5, 2, 1}))

			s.SetNumbers("9,8")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Running()).To(BeFalse())
			Expect(s.Values()).To(Equal([]int{9, 8}))
			s.Tick()
			Expect(s.Values()).To(Equal([]int{9, 8}))
		})

		It("does nothing when both fields are blank", func() {
			before := append([]int(nil), s.Values()...)
			s.SetNumbers("   ")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Values()).To(Equal(before))
		})
	})

	Describe("Select", func() {
		It("keeps a single selection", func() {
			Expect(s.Select("Bubble Sort")).To(Succeed())
			Expect(s.Select("radix")).To(Succeed())
			info, _ := s.Selected()
			Expect(info.Title).To(Equal("Radix Sort"))
		})

		It("rejects unknown algorithms", func() {
			Expect(s.Select("bogo")).NotTo(Succeed())
		})

		It("shows the target only for linear search", func() {
			Expect(s.Select("Linear Search")).To(Succeed())
			Expect(s.TargetVisible()).To(BeTrue())
			Expect(s.Select("quick")).To(Succeed())
			Expect(s.TargetVisible()).To(BeFalse())
		})
	})

	Describe("Launch", func() {
		BeforeEach(func() {
			s.SetNumbers("3,1,2")
			Expect(s.Enter()).To(Succeed())
		})

		It("requires a selection", func() {
			Expect(s.Launch()).To(MatchError(session.ErrNoAlgorithm))
			Expect(s.Player().State()).To(Equal(player.Idle))
			Expect(s.Timings()).To(BeEmpty())
		})

		It("times all sorts and animates the selection", func() {
			Expect(s.Select("bubble")).To(Succeed())
			Expect(s.Launch()).To(Succeed())

			Expect(s.Running()).To(BeTrue())
			names := []string{}
			for _, t := range s.Timings() {
				names = append(names, t.Name)
			}
			Expect(names).To(Equal([]string{"Bubble Sort", "Merge Sort", "Quick Sort", "Radix Sort"}))

			Expect(s.Tick()).To(BeTrue())
			Expect(s.Values()).To(Equal([]int{1, 3, 2}))
			drain(s)
			Expect(s.Values()).To(Equal([]int{1, 2, 3}))
			Expect(s.Original()).To(Equal([]int{3, 1, 2}))
		})

		It("reveals the chart only after completion", func() {
			Expect(s.Select("merge")).To(Succeed())
			Expect(s.Launch()).To(Succeed())
			s.Tick()
			Expect(s.Reveal()).To(Equal(0))
			drain(s)
			Expect(s.Reveal()).To(Equal(2))
			for i := 0; i < 100; i++ {
				s.Tick()
			}
			Expect(s.Reveal()).To(Equal(100))
		})

		It("times linear search alone and reads the target", func() {
			Expect(s.Select("linear")).To(Succeed())
			s.SetTarget(" 2 ")
			Expect(s.Launch()).To(Succeed())
			Expect(s.Target()).To(Equal(2))
			Expect(s.TargetText()).To(BeEmpty())
			Expect(s.Timings()).To(HaveLen(1))
			Expect(s.Timings()[0].Name).To(Equal("Linear Search"))
			Expect(s.Highlighted(2)).To(BeTrue())
			Expect(s.Highlighted(0)).To(BeFalse())
			Expect(s.Highlighted(7)).To(BeFalse())
		})

		It("keeps the previous target on invalid input but still launches", func() {
			Expect(s.Select("linear")).To(Succeed())
			s.SetTarget("abc")
			Expect(s.Launch()).To(MatchError(session.ErrInvalidTarget))
			Expect(s.Target()).To(Equal(50))
			Expect(s.TargetText()).To(BeEmpty())
			Expect(s.Running()).To(BeTrue())
		})

		It("restarts from the original array", func() {
			Expect(s.Select("quick")).To(Succeed())
			Expect(s.Launch()).To(Succeed())
			drain(s)
			Expect(s.Launch()).To(Succeed())
			Expect(s.Values()).To(Equal([]int{3, 1, 2}))
		})
	})

	Describe("TogglePause", func() {
		It("freezes the array while paused", func() {
			s.SetNumbers("4,3,2,1")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Select("bubble")).To(Succeed())
			Expect(s.Launch()).To(Succeed())
			s.Tick()

			s.TogglePause()
			Expect(s.Paused()).To(BeTrue())
			frozen := append([]int(nil), s.Values()...)
			Expect(s.Tick()).To(BeFalse())
			Expect(s.Values()).To(Equal(frozen))

			s.TogglePause()
			Expect(s.Running()).To(BeTrue())
		})

		It("is a no-op before launch", func() {
			s.TogglePause()
			Expect(s.Player().State()).To(Equal(player.Idle))
		})
	})

	Describe("Reset", func() {
		It("clears fields, selection and timings and restores the array", func() {
			s.SetNumbers("9,8,7")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Select("bubble")).To(Succeed())
			Expect(s.Launch()).To(Succeed())
			s.Tick()
			s.SetNumbers("1")
			s.SetSize("2")
			s.SetTarget("3")

			s.Reset()
			Expect(s.Numbers()).To(BeEmpty())
			Expect(s.Size()).To(BeEmpty())
			Expect(s.TargetText()).To(BeEmpty())
			_, ok := s.Selected()
			Expect(ok).To(BeFalse())
			Expect(s.Timings()).To(BeNil())
			Expect(s.Values()).To(Equal([]int{9, 8, 7}))
			Expect(s.Player().State()).To(Equal(player.Idle))
			Expect(s.Tick()).To(BeFalse())
		})
	})

	Describe("Header", func() {
		It("abbreviates long arrays", func() {
			s.SetSize("40")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Header()).To(HavePrefix("[21, 22, 23"))
			Expect(s.Header()).To(ContainSubstring(" ... "))
			Expect(s.Header()).To(HaveSuffix("59, 60]"))
		})

		It("prints short arrays in full", func() {
			s.SetNumbers("1,2,3")
			Expect(s.Enter()).To(Succeed())
			Expect(s.Header()).To(Equal("[1, 2, 3]"))
		})
	})
})
