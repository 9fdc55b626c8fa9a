// Diagnostic tool for classifying Universal MIDI Packets.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-midi2/midi2"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/umpdump/main.go <word> [word ...]")
		fmt.Println("Words are 32-bit hex values, e.g. 10f80000 or 0x43954000.")
		os.Exit(1)
	}

	words := make([]uint32, 0, len(os.Args)-1)
	for _, arg := range os.Args[1:] {
		v, err := strconv.ParseUint(strings.TrimPrefix(arg, "0x"), 16, 32)
		if err != nil {
			fmt.Printf("ERROR: bad word %q: %v\n", arg, err)
			os.Exit(1)
		}
		words = append(words, uint32(v))
	}

	for i, word := range words {
		fmt.Printf("word %d: %#08x\n", i, word)
	}

	msg, err := midi2.Classify(words)
	if err != nil {
		fmt.Printf("ERROR: unclassifiable packet: %v\n", err)
		os.Exit(1)
	}

	describe(msg)
}

func describe(msg midi2.Message) {
	fmt.Printf("kind: %T\n", msg)

	group := "?"
	if sm, ok := msg.(interface{ Group() midi2.Group }); ok {
		group = fmt.Sprintf("%d", sm.Group())
	}
	fmt.Printf("group: %s\n", group)

	switch m := msg.(type) {
	case midi2.SystemMessage:
		status, err := m.Status()
		if err != nil {
			fmt.Printf("status: ERROR %v\n", err)
			return
		}
		fmt.Printf("status: %s (%#02x)\n", status, uint8(status))
		describeSystem(msg)
	case midi2.VoiceMessage:
		opcode, err := m.Opcode()
		if err != nil {
			fmt.Printf("opcode: ERROR %v\n", err)
			return
		}
		fmt.Printf("opcode: %s (%#x)\n", opcode, uint8(opcode))
		fmt.Printf("channel: %d\n", m.Channel())
		describeVoice(msg)
	}
}

func describeSystem(msg midi2.Message) {
	switch m := msg.(type) {
	case midi2.MIDITimeCode:
		qf, err := m.QuarterFrame()
		if err != nil {
			fmt.Printf("quarter frame: ERROR %v\n", err)
			return
		}
		fmt.Printf("quarter frame: %s nibble %#x\n", qf.Type, uint8(qf.Data))
	case midi2.SongPositionPointer:
		pos, err := m.Position()
		if err != nil {
			fmt.Printf("position: ERROR %v\n", err)
			return
		}
		fmt.Printf("position: %d beats\n", pos)
	case midi2.SongSelect:
		song, err := m.Song()
		if err != nil {
			fmt.Printf("song: ERROR %v\n", err)
			return
		}
		fmt.Printf("song: %d\n", song)
	}
}

func describeVoice(msg midi2.Message) {
	if m, ok := msg.(interface{ Note() (midi2.Note, error) }); ok {
		note, err := m.Note()
		if err != nil {
			fmt.Printf("note: ERROR %v\n", err)
		} else {
			fmt.Printf("note: %d\n", note)
		}
	}
	if m, ok := msg.(interface{ Velocity() midi2.Velocity }); ok {
		fmt.Printf("velocity: %d\n", m.Velocity())
	}
	if m, ok := msg.(interface{ Data() midi2.Data }); ok {
		fmt.Printf("data: %#08x\n", uint32(m.Data()))
	}
	if m, ok := msg.(interface{ Attribute() (midi2.Attribute, error) }); ok {
		attr, err := m.Attribute()
		if err != nil {
			fmt.Printf("attribute: ERROR %v\n", err)
		} else {
			fmt.Printf("attribute: %+v\n", attr)
		}
	}
}
