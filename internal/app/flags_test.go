package app

import (
	"flag"
	"io"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-scale", "5", "-sim-tps", "4", "-paused", "-set", "w=64", "-set", "birth = 2"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 5 || cfg.SimTPS != 4 || !cfg.Paused {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Sim != "life" || cfg.TPS != 60 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if cfg.Options["w"] != "64" || cfg.Options["birth"] != "2" {
		t.Fatalf("options = %v", cfg.Options)
	}
	if got := cfg.Options.String(); got != "birth=2,w=64" {
		t.Fatalf("Options.String() = %q", got)
	}
}

func TestOptionsRejectsMalformedPairs(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	for _, arg := range []string{"novalue", "=3"} {
		if err := fs.Parse([]string{"-set", arg}); err == nil {
			t.Fatalf("expected error for -set %q", arg)
		}
	}
}
