package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()
	cmd := NewRootCmd()
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func TestSnapshotPrintsSeededDataset(t *testing.T) {
	out, _, err := runCLI(t, []string{"snapshot"})
	if err != nil {
		t.Fatalf("snapshot error: %v", err)
	}

	var payload struct {
		Data struct {
			Projects []map[string]any `json:"projects"`
			Tasks    []map[string]any `json:"tasks"`
			Teams    []map[string]any `json:"teams"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(payload.Data.Projects) == 0 || len(payload.Data.Tasks) == 0 || len(payload.Data.Teams) == 0 {
		t.Fatalf("seeded dataset incomplete: %+v", payload.Data)
	}
	if name, _ := payload.Data.Projects[0]["name"].(string); name == "" {
		t.Fatalf("project missing name: %+v", payload.Data.Projects[0])
	}
}

func TestSnapshotEmptyFlag(t *testing.T) {
	out, _, err := runCLI(t, []string{"snapshot", "--empty"})
	if err != nil {
		t.Fatalf("snapshot --empty error: %v", err)
	}
	var payload struct {
		Data struct {
			Projects []any `json:"projects"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(payload.Data.Projects) != 0 {
		t.Fatalf("--empty should start with no projects: %+v", payload.Data.Projects)
	}
}

func TestInvalidTodayFlagErrors(t *testing.T) {
	_, _, err := runCLI(t, []string{"snapshot", "--today", "last tuesday"})
	if err == nil {
		t.Fatalf("expected error for malformed --today")
	}
}

func TestDocsListsTopics(t *testing.T) {
	out, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs error: %v", err)
	}
	var payload struct {
		Data struct {
			Topics []string `json:"topics"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	want := map[string]bool{"guide": false, "keys": false, "data": false}
	for _, topic := range payload.Data.Topics {
		if _, ok := want[topic]; ok {
			want[topic] = true
		}
	}
	for topic, seen := range want {
		if !seen {
			t.Fatalf("topic %q missing from %v", topic, payload.Data.Topics)
		}
	}
}

func TestDocsRawTopic(t *testing.T) {
	out, _, err := runCLI(t, []string{"docs", "guide", "--raw"})
	if err != nil {
		t.Fatalf("docs guide error: %v", err)
	}
	if !strings.Contains(string(out), "#") {
		t.Fatalf("expected markdown output, got %q", out)
	}
}

func TestDocsUnknownTopic(t *testing.T) {
	_, stderr, err := runCLI(t, []string{"docs", "nope"})
	if err == nil {
		t.Fatalf("expected error for unknown topic")
	}
	if !strings.Contains(string(stderr), "unknown docs topic") {
		t.Fatalf("stderr = %q", stderr)
	}
}
