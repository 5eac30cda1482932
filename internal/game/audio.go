package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"busview/internal/route"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Cue identifies a cabin sound.
type Cue int

const (
	CueDoorsOpen Cue = iota
	CueDoorsClose
	CueTicket
	CueInspection
	CueFine
)

// Audio plays procedurally generated cabin sounds. A nil *Audio is silent.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	cache  map[Cue][]byte
}

func NewAudio(volume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	a := &Audio{
		ctx:    ctx,
		ready:  ready,
		volume: volume,
		cache:  make(map[Cue][]byte),
	}
	for _, c := range []Cue{CueDoorsOpen, CueDoorsClose, CueTicket, CueInspection, CueFine} {
		a.cache[c] = generateCue(c)
	}
	return a, nil
}

// Play starts cue on its own player and returns immediately.
func (a *Audio) Play(cue Cue) {
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.cache[cue]
	if len(samples) == 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Subscribe maps route events to cues.
func (a *Audio) Subscribe(eb *route.EventBus) {
	if a == nil {
		return
	}
	eb.Subscribe(route.EventArrived, func(route.Event) { a.Play(CueDoorsOpen) })
	eb.Subscribe(route.EventDeparted, func(route.Event) { a.Play(CueDoorsClose) })
	eb.Subscribe(route.EventPassengersChanged, func(route.Event) { a.Play(CueTicket) })
	eb.Subscribe(route.EventInspectionStarted, func(route.Event) { a.Play(CueInspection) })
	eb.Subscribe(route.EventInspectionResolved, func(e route.Event) {
		if e.Fine > 0 {
			a.Play(CueFine)
		}
	})
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < 2; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateCue(c Cue) []byte {
	switch c {
	case CueDoorsOpen:
		return genChime([]float64{659.25, 523.25}) // E5 C5
	case CueDoorsClose:
		return genChime([]float64{523.25, 659.25, 783.99})
	case CueTicket:
		return genTicket()
	case CueInspection:
		return genInspection()
	case CueFine:
		return genFine()
	}
	return nil
}

// genChime: bell notes, each ringing over the next, like a door warning.
func genChime(notes []float64) []byte {
	step := int(0.16 * SampleRate)
	total := len(notes)*step + int(0.35*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			mix[start+j] += fm(t, freq, 3.5, 4.0*env) * env * 0.3
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genTicket: short validator beep.
func genTicket() []byte {
	n := SampleRate * 70 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.6, 0.2)
		putStereoF32(buf, i, softSat(math.Sin(2*math.Pi*1760*t)*env*0.3))
	}
	return buf
}

// genInspection: two-tone attention call.
func genInspection() []byte {
	n := int(0.5 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 880.0
		if p >= 0.5 {
			freq = 660.0
		}
		env := adsr(p, 0.01, 0.2, 0.7, 0.15)
		s := fm(t, freq, 1.0, 0.8) * env * 0.32
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genFine: low descending buzz.
func genFine() []byte {
	n := int(0.4 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.55, 0.2, 0.25)
		freq := 220 - 90*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.45
		s += math.Sin(2*math.Pi*freq*2*t) * env * 0.1
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
