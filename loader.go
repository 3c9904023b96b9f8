package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// isRemoteSource 数据源是否需要通过 HTTP 获取
func isRemoteSource(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// readSource 读取本地文件或 http(s) URL 的原始内容
func readSource(ctx context.Context, client *http.Client, location string) ([]byte, error) {
	if !isRemoteSource(location) {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", location, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", location, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP status %d", location, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", location, err)
	}
	return body, nil
}

// parseDataset 将 JSON 对象数组解析为记录
// 只有字段存在且为 JSON 数字时才算有效数值
func parseDataset(data []byte, src DataSource) (Dataset, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Dataset{}, fmt.Errorf("parse %s: %w", src.Location, err)
	}

	ds := Dataset{
		Source:  src.Location,
		Field:   src.Field,
		Records: make([]Record, 0, len(raw)),
	}
	for i, obj := range raw {
		var rec Record
		if v, ok := obj["state_po"]; ok {
			if err := json.Unmarshal(v, &rec.StatePO); err != nil {
				// 州代码不是字符串时保留记录，键为空
				logWarn("log.loader.badState", src.Location, i, string(v))
			}
		}
		if v, ok := obj[string(src.Field)]; ok {
			rec.Value, rec.Defined = decodeNumber(v)
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

func decodeNumber(v json.RawMessage) (float64, bool) {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) || v[0] == '"' {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, false
	}
	return f, true
}

// loadDataset 读取并解析单个数据源
func loadDataset(ctx context.Context, client *http.Client, src DataSource) (Dataset, error) {
	logDebug("log.loader.start", src.Location)

	data, err := readSource(ctx, client, src.Location)
	if err != nil {
		logError("log.loader.fail", src.Location, err)
		return Dataset{}, err
	}

	ds, err := parseDataset(data, src)
	if err != nil {
		logError("log.loader.fail", src.Location, err)
		return Dataset{}, err
	}

	logInfo("log.loader.done", src.Location, len(ds.Records))
	return ds, nil
}

// loadAllDatasets 并发加载全部数据源并等待全部完成
// 任一失败即取消其余加载并返回该错误
func loadAllDatasets(ctx context.Context, client *http.Client, sources []DataSource) ([]Dataset, error) {
	if client == nil {
		client = http.DefaultClient
	}

	g, gctx := errgroup.WithContext(ctx)
	results := make([]Dataset, len(sources))
	for i, src := range sources {
		g.Go(func() error {
			ds, err := loadDataset(gctx, client, src)
			if err != nil {
				return err
			}
			results[i] = ds
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
