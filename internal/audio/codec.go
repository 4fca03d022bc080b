// Package audio holds the speech cache, the PCM codec, and playback.
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// DefaultSampleRate is the sample rate of the speech synthesis payloads.
const DefaultSampleRate = 24000

// PCMBuffer is a decoded, playable audio buffer with per-channel samples
// normalized to [-1, 1].
type PCMBuffer struct {
	SampleRate int
	Channels   [][]float32
}

// NumFrames returns the number of frames per channel.
func (b *PCMBuffer) NumFrames() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// DecodeBase64 decodes a base64-encoded audio payload into raw bytes.
func DecodeBase64(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("base64.DecodeString > %w", err)
	}
	return data, nil
}

// DecodePCM16 reinterprets a headless stream of 16-bit signed little-endian
// samples as a playable buffer, de-interleaving into numChannels channels and
// normalizing each sample by 1/32768.
func DecodePCM16(data []byte, sampleRate, numChannels int) (*PCMBuffer, error) {
	if numChannels < 1 {
		return nil, fmt.Errorf("invalid channel count: %d", numChannels)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("PCM payload has odd length %d", len(data))
	}

	sampleCount := len(data) / 2
	frameCount := sampleCount / numChannels

	buffer := &PCMBuffer{
		SampleRate: sampleRate,
		Channels:   make([][]float32, numChannels),
	}
	for channel := range buffer.Channels {
		buffer.Channels[channel] = make([]float32, frameCount)
	}

	for i := 0; i < frameCount*numChannels; i++ {
		sample := int16(binary.LittleEndian.Uint16(data[i*2:]))
		buffer.Channels[i%numChannels][i/numChannels] = float32(sample) / 32768.0
	}
	return buffer, nil
}
