package node

import (
	"time"

	"camnode/internal/camera"
)

// ModuleName はノードモジュールの名称
const ModuleName = "camera_node"

// ModuleVersion はノードモジュールのバージョン
const ModuleVersion = "1.0.0"

// ActionStatus はアクションの実行結果の状態
type ActionStatus string

const (
	ActionSucceeded ActionStatus = "succeeded" // 正常終了
	ActionFailed    ActionStatus = "failed"    // 異常終了
)

// ActionArgs はアクションに渡される型付き引数
// nilのフィールドは「指定なし」を意味する
type ActionArgs struct {
	Focus     *int  `json:"focus,omitempty"`     // マニュアルフォーカス値 (0-255)
	AutoFocus *bool `json:"autofocus,omitempty"` // オートフォーカスの有効/無効
}

// ActionResult はアクションの実行結果
type ActionResult struct {
	ActionID    string                 `json:"action_id"`
	ActionName  string                 `json:"action_name"`
	Status      ActionStatus           `json:"status"`
	Data        map[string]interface{} `json:"data,omitempty"`
	ImagePath   string                 `json:"-"` // 撮影画像のローカルパス
	Errors      []string               `json:"errors,omitempty"`
	StartedAt   time.Time              `json:"started_at"`
	CompletedAt time.Time              `json:"completed_at"`
}

// HasImage は結果に撮影画像が紐づいているかを返す
func (r *ActionResult) HasImage() bool {
	return r.ImagePath != ""
}

// ArgumentDefinition はアクション引数の定義
type ArgumentDefinition struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// ActionDefinition はアクションの定義
type ActionDefinition struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Args        []ArgumentDefinition `json:"args"`
}

// Definition はノードの定義情報
type Definition struct {
	NodeID        string             `json:"node_id"`
	NodeName      string             `json:"node_name"`
	ModuleName    string             `json:"module_name"`
	ModuleVersion string             `json:"module_version"`
	Actions       []ActionDefinition `json:"actions"`
}

// State はノードの現在状態
type State struct {
	CameraStatus camera.Status `json:"camera_status"`
	Locked       bool          `json:"locked"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// focusArgs はtake_picture/read_barcode共通の引数定義
func focusArgs() []ArgumentDefinition {
	return []ArgumentDefinition{
		{
			Name:        "focus",
			Type:        "integer",
			Required:    false,
			Description: "マニュアルフォーカス値 (0-255)。オートフォーカス無効時のみ使用される",
		},
		{
			Name:        "autofocus",
			Type:        "boolean",
			Required:    false,
			Description: "オートフォーカスの有効/無効",
		},
	}
}
