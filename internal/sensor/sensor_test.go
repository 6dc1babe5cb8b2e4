package sensor

import (
	"errors"
	"strings"
	"testing"
)

type fixedAnalog struct {
	v   int
	err error
}

func (f fixedAnalog) Read() (int, error) { return f.v, f.err }

type fixedDigital struct {
	v bool
}

func (f fixedDigital) Read() (bool, error) { return f.v, nil }

func TestProbeRead(t *testing.T) {
	p := Probe{
		Moisture: fixedAnalog{v: 512},
		Light:    fixedAnalog{v: 900},
		Temp:     fixedAnalog{v: 23},
		Motion:   fixedDigital{v: true},
	}

	s, err := p.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := Sample{Moisture: 512, Light: 900, TempRaw: 23, Motion: true}
	if s != want {
		t.Errorf("sample = %+v, want %+v", s, want)
	}
}

func TestProbeReadNamesFailingPort(t *testing.T) {
	p := Probe{
		Moisture: fixedAnalog{v: 512},
		Light:    fixedAnalog{err: errors.New("wire loose")},
		Temp:     fixedAnalog{v: 23},
		Motion:   fixedDigital{},
	}

	_, err := p.Read()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "light") {
		t.Errorf("error %q does not name the port", err)
	}
}
