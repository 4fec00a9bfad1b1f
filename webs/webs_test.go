package webs

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/tapeworm/logs"
	"github.com/reusee/tapeworm/modes"
	"github.com/reusee/tapeworm/programs"
	"golang.org/x/net/websocket"
)

func newServer(t *testing.T, src string, input string, options Options) *httptest.Server {
	t.Helper()
	program, err := programs.Load(src)
	if err != nil {
		t.Fatal(err)
	}
	server := httptest.NewServer(Handler(program, []byte(input), options))
	t.Cleanup(server.Close)
	return server
}

func receiveAll(t *testing.T, server *httptest.Server) []Frame {
	t.Helper()
	conn, err := websocket.Dial(
		"ws"+strings.TrimPrefix(server.URL, "http")+"/ws",
		"",
		server.URL+"/",
	)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var frames []Frame
	for {
		var frame Frame
		if err := websocket.JSON.Receive(conn, &frame); err != nil {
			t.Fatalf("receive: %v", err)
		}
		frames = append(frames, frame)
		if frame.Halt != "" {
			return frames
		}
	}
}

func TestIndex(t *testing.T) {
	server := newServer(t, "+", "", Options{})
	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(body, []byte("/ws")) {
		t.Fatalf("got %s", body)
	}

	resp, err = http.Get(server.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("got %d", resp.StatusCode)
	}
}

func TestStream(t *testing.T) {
	server := newServer(t, ",+.", "A", Options{
		TapeLength: 4,
		Cells:      2,
	})
	frames := receiveAll(t, server)
	if len(frames) != 4 {
		t.Fatalf("got %d frames", len(frames))
	}

	first := frames[0]
	if first.Step != 1 || first.Command != "," || first.Position != 0 || first.PC != 1 {
		t.Fatalf("got %+v", first)
	}
	if len(first.Tape) != 2 || first.Tape[0] != 65 {
		t.Fatalf("got %v", first.Tape)
	}

	last := frames[3]
	if last.Halt != "program ended" {
		t.Fatalf("got %q", last.Halt)
	}
	if last.Fault != "" {
		t.Fatalf("got %q", last.Fault)
	}
	if last.Output != "B" {
		t.Fatalf("got %q", last.Output)
	}
	if last.Step != 3 {
		t.Fatalf("got %d", last.Step)
	}
}

func TestStreamFault(t *testing.T) {
	server := newServer(t, "+><<", "", Options{})
	frames := receiveAll(t, server)
	if len(frames) != 4 {
		t.Fatalf("got %d frames", len(frames))
	}
	last := frames[3]
	if last.Halt != "faulted" {
		t.Fatalf("got %q", last.Halt)
	}
	if !strings.Contains(last.Fault, "position 3") {
		t.Fatalf("got %q", last.Fault)
	}
}

func TestStreamBudget(t *testing.T) {
	server := newServer(t, "+[]", "", Options{
		MaxSteps: 3,
	})
	frames := receiveAll(t, server)
	if halt := frames[len(frames)-1].Halt; halt != "step budget exhausted" {
		t.Fatalf("got %q", halt)
	}
}

func TestSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if err := sleep(ctx, time.Hour); err == nil {
		t.Fatal("expected error")
	}
	if err := sleep(t.Context(), time.Millisecond); err != nil {
		t.Fatal(err)
	}
}

func TestServe(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Call(func(
		serve Serve,
	) {
		program, err := programs.Load("+")
		if err != nil {
			t.Fatal(err)
		}
		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error)
		go func() {
			done <- serve(ctx, "127.0.0.1:0", program, nil)
		}()
		time.Sleep(50 * time.Millisecond)
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Fatal(err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return")
		}
	})
}

func TestServeBadAddr(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Call(func(
		serve Serve,
	) {
		program, err := programs.Load("+")
		if err != nil {
			t.Fatal(err)
		}
		if err := serve(t.Context(), "not an address", program, nil); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestStreamBusy(t *testing.T) {
	server := newServer(t, "+[]", "", Options{
		Delay:        100 * time.Millisecond,
		MaxStreams:   1,
		QueueTimeout: 50 * time.Millisecond,
	})
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	first, err := websocket.Dial(url, "", server.URL+"/")
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()
	var frame Frame
	if err := websocket.JSON.Receive(first, &frame); err != nil {
		t.Fatal(err)
	}

	second, err := websocket.Dial(url, "", server.URL+"/")
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	if err := websocket.JSON.Receive(second, &frame); err != nil {
		t.Fatal(err)
	}
	if frame.Halt != HaltBusy {
		t.Fatalf("got %+v", frame)
	}
}

func TestStreamQueued(t *testing.T) {
	server := newServer(t, "+[]", "", Options{
		Delay:      20 * time.Millisecond,
		MaxSteps:   10,
		MaxStreams: 1,
	})
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"

	first, err := websocket.Dial(url, "", server.URL+"/")
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()
	var frame Frame
	if err := websocket.JSON.Receive(first, &frame); err != nil {
		t.Fatal(err)
	}

	// waits for the first stream instead of getting the busy frame
	frames := receiveAll(t, server)
	last := frames[len(frames)-1]
	if last.Halt != "step budget exhausted" {
		t.Fatalf("got %+v", last)
	}
	if len(frames) != 11 {
		t.Fatalf("got %d frames", len(frames))
	}
}
