package playback_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algotrace/internal/playback"
	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/trace"
)

var _ = Describe("Controller", func() {
	var (
		clock *playback.ManualScheduler
		ctrl  *playback.Controller[sorting.Step]
		seq   trace.Sequence[sorting.Step]
	)

	BeforeEach(func() {
		var err error
		seq, err = sorting.Bubble([]float64{5, 3, 1})
		Expect(err).NotTo(HaveOccurred())

		clock = playback.NewManualScheduler()
		ctrl = playback.New[sorting.Step](
			playback.WithScheduler(clock),
			playback.WithSpeed(250*time.Millisecond),
		)
		ctrl.Attach(seq)
	})

	AfterEach(func() {
		ctrl.Close()
	})

	Context("before playback starts", func() {
		It("sits at index -1 with no current step", func() {
			_, ok := ctrl.Current()
			Expect(ok).To(BeFalse())
			Expect(ctrl.Index()).To(Equal(-1))
			Expect(ctrl.Total()).To(Equal(seq.Len()))
			Expect(ctrl.State()).To(Equal(playback.StateIdle))
		})

		It("ignores stepping backward", func() {
			ctrl.StepBackward()
			Expect(ctrl.Index()).To(Equal(-1))
		})
	})

	Context("during autoplay", func() {
		BeforeEach(func() {
			ctrl.Start()
		})

		It("shows the first step immediately", func() {
			Expect(ctrl.Index()).To(Equal(0))
			Expect(ctrl.IsRunning()).To(BeTrue())
		})

		It("advances one step per tick until complete", func() {
			for i := 1; i < seq.Len(); i++ {
				clock.Advance(250 * time.Millisecond)
				Expect(ctrl.Index()).To(Equal(i))
			}
			Expect(ctrl.State()).To(Equal(playback.StateComplete))
			Expect(clock.Pending()).To(BeZero())

			last, ok := ctrl.Current()
			Expect(ok).To(BeTrue())
			Expect(last.Array).To(Equal([]float64{1, 3, 5}))
		})

		It("never keeps more than one timer", func() {
			ctrl.Start()
			ctrl.StepForward()
			ctrl.Seek(2)
			Expect(clock.Pending()).To(Equal(1))
		})

		It("drops the old timer when a new trace is attached", func() {
			next, err := sorting.Merge([]float64{2, 1})
			Expect(err).NotTo(HaveOccurred())

			ctrl.Attach(next)
			clock.Advance(10 * time.Second)

			Expect(ctrl.Index()).To(Equal(-1))
			Expect(ctrl.Total()).To(Equal(next.Len()))
			Expect(ctrl.IsRunning()).To(BeFalse())
		})

		It("holds position when paused", func() {
			clock.Advance(500 * time.Millisecond)
			ctrl.Pause()
			clock.Advance(10 * time.Second)

			Expect(ctrl.Index()).To(Equal(2))
			Expect(ctrl.State()).To(Equal(playback.StatePaused))
		})
	})

	Context("at the end of the trace", func() {
		It("ignores stepping forward", func() {
			ctrl.Seek(seq.Len() - 1)
			ctrl.StepForward()
			Expect(ctrl.Index()).To(Equal(seq.Len() - 1))
		})
	})
})
