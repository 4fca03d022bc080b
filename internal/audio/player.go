package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Sink is an audio output device accepting a decoded buffer. Play starts
// playback and returns without waiting for it to finish; overlapping plays are
// allowed to mix at the device.
type Sink interface {
	Play(buffer *PCMBuffer) error
}

// OtoSink plays decoded buffers through the platform audio device.
//
// The underlying context is created lazily from the first buffer's format and
// is fixed for the process lifetime; later buffers must match it.
type OtoSink struct {
	mu          sync.Mutex
	context     *oto.Context
	sampleRate  int
	numChannels int
}

var _ Sink = (*OtoSink)(nil)

func NewOtoSink() *OtoSink {
	return &OtoSink{}
}

func (sink *OtoSink) Play(buffer *PCMBuffer) error {
	if buffer == nil || len(buffer.Channels) == 0 {
		return fmt.Errorf("empty buffer")
	}

	context, err := sink.contextFor(buffer)
	if err != nil {
		return err
	}

	player := context.NewPlayer(bytes.NewReader(interleaveFloat32LE(buffer)))
	player.Play()

	// Fire and forget: release the player once the clip has drained.
	go func() {
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		_ = player.Close()
	}()
	return nil
}

func (sink *OtoSink) contextFor(buffer *PCMBuffer) (*oto.Context, error) {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.context != nil {
		if buffer.SampleRate != sink.sampleRate || len(buffer.Channels) != sink.numChannels {
			return nil, fmt.Errorf("buffer format %d Hz/%d ch does not match device %d Hz/%d ch",
				buffer.SampleRate, len(buffer.Channels), sink.sampleRate, sink.numChannels)
		}
		return sink.context, nil
	}

	context, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   buffer.SampleRate,
		ChannelCount: len(buffer.Channels),
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("oto.NewContext > %w", err)
	}
	<-ready

	sink.context = context
	sink.sampleRate = buffer.SampleRate
	sink.numChannels = len(buffer.Channels)
	return context, nil
}

// interleaveFloat32LE re-interleaves per-channel samples into the byte stream
// oto expects.
func interleaveFloat32LE(buffer *PCMBuffer) []byte {
	numChannels := len(buffer.Channels)
	frameCount := buffer.NumFrames()

	data := make([]byte, 4*frameCount*numChannels)
	for frame := 0; frame < frameCount; frame++ {
		for channel := 0; channel < numChannels; channel++ {
			offset := 4 * (frame*numChannels + channel)
			bits := math.Float32bits(buffer.Channels[channel][frame])
			binary.LittleEndian.PutUint32(data[offset:], bits)
		}
	}
	return data
}
