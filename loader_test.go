package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const republicanSample = `[
  {"state_po": "PA", "RepublicanSupport": 48.6},
  {"state_po": "NV"},
  {"state_po": "OH", "RepublicanSupport": 53.3},
  {"state_po": "AZ", "RepublicanSupport": null},
  {"state_po": "GA", "RepublicanSupport": "49.2"},
  {"state_po": "DC", "RepublicanSupport": 0}
]`

const democratSample = `[
  {"state_po": "PA", "DemocratSupport": 50.0},
  {"state_po": "NY", "DemocratSupport": 60.9}
]`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// TestParseDataset 只有数值类型的字段才算有效
func TestParseDataset(t *testing.T) {
	src := DataSource{Location: "inline", Field: RepublicanSupport}
	ds, err := parseDataset([]byte(republicanSample), src)
	if err != nil {
		t.Fatalf("parseDataset() error: %v", err)
	}

	if len(ds.Records) != 6 {
		t.Fatalf("len(Records) = %d, expected 6", len(ds.Records))
	}

	expected := []struct {
		state   string
		value   float64
		defined bool
		desc    string
	}{
		{"PA", 48.6, true, "数值"},
		{"NV", 0, false, "缺少字段"},
		{"OH", 53.3, true, "数值"},
		{"AZ", 0, false, "null"},
		{"GA", 0, false, "字符串"},
		{"DC", 0, true, "数值 0"},
	}
	for i, want := range expected {
		got := ds.Records[i]
		if got.StatePO != want.state || got.Defined != want.defined || got.Value != want.value {
			t.Errorf("%s: record %d = %+v, expected {%s %v %v}", want.desc, i, got, want.state, want.value, want.defined)
		}
	}

	if got := statesOf(validSubset(ds)); !equalStrings(got, []string{"OH", "PA", "DC"}) {
		t.Errorf("validSubset() = %v, expected [OH PA DC]", got)
	}
}

// TestParseDatasetInvalid 非数组 JSON 报错
func TestParseDatasetInvalid(t *testing.T) {
	src := DataSource{Location: "inline", Field: RepublicanSupport}
	for _, input := range []string{`{"state_po": "PA"}`, `not json`, ``} {
		if _, err := parseDataset([]byte(input), src); err == nil {
			t.Errorf("parseDataset(%q) expected an error", input)
		}
	}
}

// TestLoadAllDatasetsFromFiles 从本地文件加载两个数据集，结果顺序与数据源一致
func TestLoadAllDatasetsFromFiles(t *testing.T) {
	sources := []DataSource{
		{Name: "chart.republican", Location: writeTempFile(t, "r.json", republicanSample), Field: RepublicanSupport, Mount: republicanMount},
		{Name: "chart.democrat", Location: writeTempFile(t, "d.json", democratSample), Field: DemocratSupport, Mount: democratMount},
	}

	datasets, err := loadAllDatasets(context.Background(), nil, sources)
	if err != nil {
		t.Fatalf("loadAllDatasets() error: %v", err)
	}
	if len(datasets) != 2 {
		t.Fatalf("len(datasets) = %d, expected 2", len(datasets))
	}
	if datasets[0].Field != RepublicanSupport || len(datasets[0].Records) != 6 {
		t.Errorf("datasets[0] = %s with %d records", datasets[0].Field, len(datasets[0].Records))
	}
	if datasets[1].Field != DemocratSupport || len(datasets[1].Records) != 2 {
		t.Errorf("datasets[1] = %s with %d records", datasets[1].Field, len(datasets[1].Records))
	}
}

// TestLoadAllDatasetsOverHTTP 通过 HTTP 加载
func TestLoadAllDatasetsOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/republican_support.json":
			w.Write([]byte(republicanSample))
		case "/democrat_support.json":
			w.Write([]byte(democratSample))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	sources := []DataSource{
		{Location: server.URL + "/republican_support.json", Field: RepublicanSupport},
		{Location: server.URL + "/democrat_support.json", Field: DemocratSupport},
	}
	datasets, err := loadAllDatasets(context.Background(), server.Client(), sources)
	if err != nil {
		t.Fatalf("loadAllDatasets() error: %v", err)
	}
	if n := len(validSubset(datasets[1])); n != 2 {
		t.Errorf("democrat valid records = %d, expected 2", n)
	}
}

// TestLoadAllDatasetsFailure 任一数据源失败则整体失败，不返回部分结果
func TestLoadAllDatasetsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/democrat_support.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(republicanSample))
	}))
	defer server.Close()

	tests := []struct {
		desc    string
		sources []DataSource
	}{
		{
			desc: "HTTP 404",
			sources: []DataSource{
				{Location: server.URL + "/republican_support.json", Field: RepublicanSupport},
				{Location: server.URL + "/democrat_support.json", Field: DemocratSupport},
			},
		},
		{
			desc: "文件不存在",
			sources: []DataSource{
				{Location: writeTempFile(t, "r.json", republicanSample), Field: RepublicanSupport},
				{Location: filepath.Join(t.TempDir(), "missing.json"), Field: DemocratSupport},
			},
		},
		{
			desc: "JSON 格式错误",
			sources: []DataSource{
				{Location: writeTempFile(t, "bad.json", "{"), Field: RepublicanSupport},
				{Location: writeTempFile(t, "d.json", democratSample), Field: DemocratSupport},
			},
		},
	}

	for _, tt := range tests {
		datasets, err := loadAllDatasets(context.Background(), server.Client(), tt.sources)
		if err == nil {
			t.Errorf("%s: expected an error", tt.desc)
		}
		if datasets != nil {
			t.Errorf("%s: expected no datasets, got %d", tt.desc, len(datasets))
		}
	}
}

// TestIsRemoteSource 测试数据源类型判断
func TestIsRemoteSource(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"http://example.com/a.json", true},
		{"HTTPS://example.com/a.json", true},
		{"data/republican_support.json", false},
		{"/tmp/http.json", false},
	}

	for _, tt := range tests {
		if got := isRemoteSource(tt.input); got != tt.expected {
			t.Errorf("isRemoteSource(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

// TestParseDatasetNonStringState 州代码不是字符串时保留记录并记录警告
func TestParseDatasetNonStringState(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir, LogInfo)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	prev := globalLogger
	globalLogger = l
	defer func() { globalLogger = prev }()

	input := `[{"state_po": 42, "RepublicanSupport": 1.5}, {"state_po": "PA", "RepublicanSupport": 2}]`
	ds, err := parseDataset([]byte(input), DataSource{Location: "inline.json", Field: RepublicanSupport})
	if err != nil {
		t.Fatalf("parseDataset() error: %v", err)
	}
	if len(ds.Records) != 2 || ds.Records[0].StatePO != "" || !ds.Records[0].Defined {
		t.Errorf("records = %+v, expected the numeric state kept with an empty code", ds.Records)
	}
	l.Sync()

	files, _ := filepath.Glob(filepath.Join(dir, "*.log"))
	if len(files) != 1 {
		t.Fatalf("log files = %v, expected one", files)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "[log.loader.badState]") || !strings.Contains(out, "inline.json") {
		t.Errorf("missing warning for non-string state_po in log:\n%s", out)
	}
}
