package app

import (
    "bytes"
    "os"
    "path/filepath"
    "testing"

    "github.com/hyperifyio/htmlflow/internal/extract"
)

func TestExecute_NoArgumentPrintsUsage(t *testing.T) {
    for _, ex := range []extract.Extractor{extract.TextExtractor{}, extract.FlowExtractor{}} {
        var out bytes.Buffer
        // A nonexistent dotenv path proves nothing is opened before the usage check.
        code := Execute("tool", ex, []string{"-env", filepath.Join(t.TempDir(), "unreadable", ".env")}, &out)
        if code != 0 {
            t.Fatalf("exit code %d, want 0", code)
        }
        if out.String() != "Please provide a file path.\n" {
            t.Fatalf("got %q", out.String())
        }
    }
}

func TestExecute_RunsExtractor(t *testing.T) {
    dir := t.TempDir()
    p := writeGB18030(t, dir, "in.htm", `<html><body><img src="a.png"><p>caption</p></body></html>`)
    var out bytes.Buffer
    code := Execute("analyze_feedback_flow", extract.FlowExtractor{}, []string{"-env", "", p}, &out)
    if code != 0 {
        t.Fatalf("exit code %d", code)
    }
    if out.String() != "IMAGE: a.png\nTEXT: caption\nSTRING: caption\n" {
        t.Fatalf("got %q", out.String())
    }
}

func TestExecute_MissingFileExitsNonZero(t *testing.T) {
    var out bytes.Buffer
    code := Execute("extract_html_text", extract.TextExtractor{}, []string{"-env", "", filepath.Join(t.TempDir(), "gone.htm")}, &out)
    if code == 0 {
        t.Fatalf("expected non-zero exit for missing file")
    }
    if out.Len() != 0 {
        t.Fatalf("expected nothing on stdout, got %q", out.String())
    }
}

func TestExecute_EncodingFlagOverridesEnv(t *testing.T) {
    t.Setenv(EnvEncoding, "big5")
    dir := t.TempDir()
    p := filepath.Join(dir, "utf8.htm")
    if err := os.WriteFile(p, []byte("<body><p>héllo</p></body>"), 0o644); err != nil {
        t.Fatalf("write: %v", err)
    }
    var out bytes.Buffer
    if code := Execute("extract_html_text", extract.TextExtractor{}, []string{"-env", "", "-encoding", "utf-8", p}, &out); code != 0 {
        t.Fatalf("exit code %d", code)
    }
    if out.String() != "héllo\n" {
        t.Fatalf("got %q", out.String())
    }
}

func TestExecute_ConfigFileSuppliesEncoding(t *testing.T) {
    t.Setenv(EnvEncoding, "")
    dir := t.TempDir()
    cfgPath := filepath.Join(dir, "htmlflow.yaml")
    if err := os.WriteFile(cfgPath, []byte("encoding: utf-8\n"), 0o644); err != nil {
        t.Fatalf("write config: %v", err)
    }
    p := filepath.Join(dir, "utf8.htm")
    if err := os.WriteFile(p, []byte("<body><p>naïve</p></body>"), 0o644); err != nil {
        t.Fatalf("write: %v", err)
    }
    var out bytes.Buffer
    if code := Execute("extract_html_text", extract.TextExtractor{}, []string{"-env", "", "-config", cfgPath, p}, &out); code != 0 {
        t.Fatalf("exit code %d", code)
    }
    if out.String() != "naïve\n" {
        t.Fatalf("got %q", out.String())
    }
}

func TestExecute_InvalidEncoding(t *testing.T) {
    p := writeGB18030(t, t.TempDir(), "in.htm", "<body>x</body>")
    if code := Execute("extract_html_text", extract.TextExtractor{}, []string{"-env", "", "-encoding", "nope", p}, &bytes.Buffer{}); code != 1 {
        t.Fatalf("exit code %d, want 1", code)
    }
}

func TestExecute_Version(t *testing.T) {
    var out bytes.Buffer
    if code := Execute("extract_html_text", extract.TextExtractor{}, []string{"-version"}, &out); code != 0 {
        t.Fatalf("exit code %d", code)
    }
    if out.Len() == 0 {
        t.Fatalf("expected version output")
    }
}
