package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xh-polaris/gopkg/util/log"
)

// HttpClient 是一个简单的 HTTP 客户端
type HttpClient struct {
	Client *http.Client
}

// NewHttpClient 创建一个新的 HttpClient 实例
func NewHttpClient(timeout time.Duration) *HttpClient {
	return &HttpClient{
		Client: &http.Client{Timeout: timeout},
	}
}

// StatusError 非 2xx 响应
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, response body: %s", e.StatusCode, e.Body)
}

// Req 发送 HTTP 请求, 并将 JSON 响应反序列化到 out 中
func (c *HttpClient) Req(ctx context.Context, method, url string, headers http.Header, body, out any) error {
	resp, err := c.do(ctx, method, url, headers, body)
	if err != nil {
		return fmt.Errorf("发送请求失败: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("关闭请求失败: %v", closeErr)
		}
	}()

	// 读取响应
	_resp, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	// 检查响应状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(_resp)}
	}

	// 反序列化响应体
	if err = json.Unmarshal(_resp, out); err != nil {
		return fmt.Errorf("反序列化响应失败: %w", err)
	}
	return nil
}

// do 实际执行请求
func (c *HttpClient) do(ctx context.Context, method, url string, headers http.Header, body any) (*http.Response, error) {
	// 将 body 序列化为 JSON
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("请求体序列化失败: %w", err)
	}

	// 创建新的请求
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	// 设置请求头
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return c.Client.Do(req)
}
