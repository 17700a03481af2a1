// Package resource オーケストレータのリソースマネージャとの連携を担う
//
// ノード起動時のリソーステンプレート登録と、テンプレートからの
// リソース作成のみを提供する薄いRESTクライアント
package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// requestTimeout はリソースマネージャへのリクエストのタイムアウト
const requestTimeout = 10 * time.Second

// Slot は単一スロットのリソース定義
type Slot struct {
	ResourceName  string                 `json:"resource_name"`
	ResourceClass string                 `json:"resource_class"`
	Capacity      int                    `json:"capacity"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`
}

// Template はリソーステンプレートの登録内容
type Template struct {
	TemplateName      string   `json:"template_name"`
	Description       string   `json:"description"`
	Resource          Slot     `json:"resource"`
	RequiredOverrides []string `json:"required_overrides,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	CreatedBy         string   `json:"created_by"`
	Version           string   `json:"version"`
}

// Resource はリソースマネージャ上に作成されたリソース
type Resource struct {
	ResourceID   string `json:"resource_id"`
	ResourceName string `json:"resource_name"`
}

// Client はリソースマネージャのRESTクライアント
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient は新しいClientを作成する
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// InitTemplate はリソーステンプレートを登録する
// 同名テンプレートが既に存在する場合、マネージャ側で上書きされる
func (c *Client) InitTemplate(ctx context.Context, template Template) error {
	if err := c.post(ctx, "/templates", template, nil); err != nil {
		return fmt.Errorf("テンプレート %s の登録に失敗: %w", template.TemplateName, err)
	}
	return nil
}

// CreateResourceFromTemplate はテンプレートからリソースを作成する
func (c *Client) CreateResourceFromTemplate(ctx context.Context, templateName, resourceName string) (*Resource, error) {
	body := map[string]interface{}{
		"resource_name":   resourceName,
		"add_to_database": true,
	}

	var resource Resource
	if err := c.post(ctx, "/templates/"+templateName+"/resources", body, &resource); err != nil {
		return nil, fmt.Errorf("テンプレート %s からのリソース作成に失敗: %w", templateName, err)
	}

	return &resource, nil
}

// post はJSONボディをPOSTし、必要に応じてレスポンスをデコードする
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("リクエストのエンコードに失敗: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("リクエストの送信に失敗: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("リソースマネージャがエラーを返しました: %d %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("レスポンスのデコードに失敗: %w", err)
		}
	}

	return nil
}
