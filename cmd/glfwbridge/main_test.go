// cmd/glfwbridge/main_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kjunichi/node-glfw/pkg/log"
	"github.com/kjunichi/node-glfw/pkg/platform"
)

type fakeSession struct {
	terminated bool
}

func (f *fakeSession) Terminate() { f.terminated = true }

func TestWithPlatformTerminatesBeforeReturning(t *testing.T) {
	sess := &fakeSession{}
	bodyErr := errors.New("window failed")
	open := func() (*fakeSession, error) { return sess, nil }

	err := withPlatform(open, func(s *fakeSession) error {
		if s.terminated {
			t.Errorf("terminated before body ran")
		}
		return bodyErr
	})
	if !errors.Is(err, bodyErr) {
		t.Errorf("got error %v, expected %v", err, bodyErr)
	}
	if !sess.terminated {
		t.Errorf("session still up after withPlatform returned an error")
	}

	// If opening fails there is nothing to run or shut down.
	openErr := errors.New("no display")
	ran := false
	err = withPlatform(func() (*fakeSession, error) { return nil, openErr },
		func(*fakeSession) error { ran = true; return nil })
	if !errors.Is(err, openErr) || ran {
		t.Errorf("open failure: err %v, body ran %v", err, ran)
	}
}

func TestFatalMessage(t *testing.T) {
	err := fmt.Errorf("3: %w (1 connected)", platform.ErrInvalidMonitor)
	msg := fatalMessage(&log.Logger{LogFile: "/tmp/glfwbridge.slog"}, err)
	for _, want := range []string{"3: invalid monitor", "-monitors", "/tmp/glfwbridge.slog"} {
		if !strings.Contains(msg, want) {
			t.Errorf("%q missing from %q", want, msg)
		}
	}

	if msg := fatalMessage(nil, errors.New("boom")); msg != "boom" {
		t.Errorf("fatalMessage(nil, boom) = %q", msg)
	}
}
