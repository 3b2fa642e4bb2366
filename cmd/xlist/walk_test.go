package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xlist/lib/list"
)

func testConfig(values ...string) (*commandConfig, *bytes.Buffer, *bytes.Buffer) {
	out, logOut := &bytes.Buffer{}, &bytes.Buffer{}
	return &commandConfig{
		out:      out,
		logOut:   logOut,
		name:     "test",
		logLevel: "DEBUG",
		encoder:  "json",
		values:   values,
		rounds:   1,
	}, out, logOut
}

func TestWalkSteps(t *testing.T) {
	require.Equal(t, 5, walkSteps(3, 1))
	require.Equal(t, 9, walkSteps(3, 2))
	require.Equal(t, 2, walkSteps(0, 1))
}

func TestRunApp_Walk(t *testing.T) {
	cfg, out, logOut := testConfig("a", "b", "c")
	require.NoError(t, runApp(cfg, walk))

	require.Equal(t, strings.Join([]string{
		"done=false value=a",
		"done=false value=b",
		"done=false value=c",
		"done=true value=<nil>",
		"done=false value=a",
	}, "\n")+"\n", out.String())

	logs := logOut.String()
	require.Contains(t, logs, `"msg":"linked list step"`)
	require.Contains(t, logs, `"list":"test"`)
	require.Contains(t, logs, `"component":"Fx"`)
}

func TestRunApp_WalkEmpty(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.rounds = 2
	require.NoError(t, runApp(cfg, walk))
	require.Equal(t, strings.Repeat("done=true value=<nil>\n", 3), out.String())
}

func TestRunApp_WalkBadRounds(t *testing.T) {
	cfg, out, _ := testConfig("a")
	cfg.rounds = 0
	err := runApp(cfg, walk)
	require.Error(t, err)
	require.Contains(t, err.Error(), "rounds must be positive")
	require.Equal(t, 0, out.Len())
}

func TestRunApp_Check(t *testing.T) {
	cfg, out, _ := testConfig("x", "y")
	cfg.name = ""
	require.NoError(t, runApp(cfg, check))
	require.Equal(t, "ok len=2 values=x,y\n", out.String())
}

func TestCheck_Invalid(t *testing.T) {
	cfg, out, _ := testConfig()
	head := list.NewListNode("a")
	l := list.NewLinkedList().Append(head).AppendValue("b")
	l.Append(head)

	err := check(l, cfg)
	require.Error(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "invalid: [linked-list]"), line)
	}
}
