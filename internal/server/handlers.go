package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"camnode/internal/camera"
	"camnode/internal/config"
	"camnode/internal/generated"
	"camnode/internal/node"
)

// CameraHandler は生成されたServerInterfaceを実装する
type CameraHandler struct {
	config *config.Config
	node   *node.Node
}

// NewCameraHandler は新しいCameraHandlerを作成する
func NewCameraHandler(cfg *config.Config, n *node.Node) *CameraHandler {
	return &CameraHandler{
		config: cfg,
		node:   n,
	}
}

// HealthCheck はヘルスチェックエンドポイントの実装
func (h *CameraHandler) HealthCheck(c *gin.Context) {
	response := generated.HealthResponse{
		Status:    generated.Healthy,
		Timestamp: time.Now(),
	}

	c.JSON(http.StatusOK, response)
}

// GetInfo はノード定義取得エンドポイントの実装
func (h *CameraHandler) GetInfo(c *gin.Context) {
	def := h.node.Definition()

	response := generated.NodeInfo{
		NodeId:        def.NodeID,
		NodeName:      def.NodeName,
		ModuleName:    def.ModuleName,
		ModuleVersion: def.ModuleVersion,
		Actions:       convertActionDefinitions(def.Actions),
	}

	c.JSON(http.StatusOK, response)
}

// GetState はノード状態取得エンドポイントの実装
func (h *CameraHandler) GetState(c *gin.Context) {
	state := h.node.State()

	response := generated.NodeState{
		CameraStatus: convertCameraStatus(state.CameraStatus),
		Locked:       state.Locked,
		UpdatedAt:    state.UpdatedAt,
	}

	c.JSON(http.StatusOK, response)
}

// GetActions はアクションカタログ取得エンドポイントの実装
func (h *CameraHandler) GetActions(c *gin.Context) {
	def := h.node.Definition()

	c.JSON(http.StatusOK, convertActionDefinitions(def.Actions))
}

// RunAction はアクション実行エンドポイントの実装
func (h *CameraHandler) RunAction(c *gin.Context, actionName string) {
	// リクエストボディは省略可能（引数なしのアクション実行）
	var request generated.RunActionJSONRequestBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&request); err != nil {
			errorJSON(c, http.StatusBadRequest, "リクエストボディの形式が不正です")
			return
		}
	}

	var args node.ActionArgs
	if request.Args != nil {
		args.Focus = request.Args.Focus
		args.AutoFocus = request.Args.Autofocus
	}

	result, err := h.node.RunAction(c.Request.Context(), actionName, args)
	if err != nil {
		switch {
		case errors.Is(err, node.ErrNodeLocked):
			errorJSON(c, http.StatusConflict, "ノードはロックされています")
		case errors.Is(err, node.ErrUnknownAction):
			errorJSON(c, http.StatusNotFound, "未知のアクションです: "+actionName)
		default:
			errorJSON(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, convertActionResult(result))
}

// GetResult はアクション実行結果取得エンドポイントの実装
func (h *CameraHandler) GetResult(c *gin.Context, actionId string) {
	result, found := h.node.GetResult(actionId)
	if !found {
		errorJSON(c, http.StatusNotFound, "実行結果が見つかりません: "+actionId)
		return
	}

	c.JSON(http.StatusOK, convertActionResult(result))
}

// GetResultImage は撮影画像取得エンドポイントの実装
func (h *CameraHandler) GetResultImage(c *gin.Context, actionId string) {
	result, found := h.node.GetResult(actionId)
	if !found || !result.HasImage() {
		errorJSON(c, http.StatusNotFound, "撮影画像が見つかりません: "+actionId)
		return
	}

	c.Header("Content-Type", "image/jpeg")
	c.File(result.ImagePath)
}

// GetFrame はスナップショット取得エンドポイントの実装
func (h *CameraHandler) GetFrame(c *gin.Context) {
	frame, err := h.node.CaptureFrame()
	if err != nil {
		if errors.Is(err, camera.ErrNotConnected) {
			errorJSON(c, http.StatusServiceUnavailable, "カメラが接続されていません")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "フレームの取得に失敗しました")
		return
	}

	c.Data(http.StatusOK, "image/jpeg", frame)
}

// ListDevices はカメラデバイス検出エンドポイントの実装
func (h *CameraHandler) ListDevices(c *gin.Context) {
	devices, err := h.node.Devices(c.Request.Context())
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "デバイスの検出に失敗しました")
		return
	}

	response := generated.DevicesResponse{
		Devices: devices,
	}

	c.JSON(http.StatusOK, response)
}

// RunAdminCommand は管理コマンド実行エンドポイントの実装
func (h *CameraHandler) RunAdminCommand(c *gin.Context, command string) {
	cmd := node.AdminCommand(command)
	switch cmd {
	case node.AdminLock, node.AdminUnlock, node.AdminReset, node.AdminShutdown:
	default:
		errorJSON(c, http.StatusBadRequest, "未知の管理コマンドです: "+command)
		return
	}

	if err := h.node.Admin(cmd); err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}

	response := generated.AdminResult{
		Command: command,
		Success: true,
		Message: stringPtr("管理コマンドを実行しました: " + command),
	}

	c.JSON(http.StatusOK, response)
}

// ヘルパー関数

// errorJSON はエラーレスポンスを書き込む
func errorJSON(c *gin.Context, status int, message string) {
	c.JSON(status, generated.ErrorResponse{Error: message})
}

// convertCameraStatus はカメラステータスを変換する
func convertCameraStatus(status camera.Status) generated.NodeStateCameraStatus {
	switch status {
	case camera.StatusConnected:
		return generated.Connected
	default:
		return generated.Disconnected
	}
}

// convertActionDefinitions はアクション定義を生成されたスキーマに変換する
func convertActionDefinitions(defs []node.ActionDefinition) []generated.ActionDefinition {
	actions := make([]generated.ActionDefinition, 0, len(defs))

	for _, def := range defs {
		args := make([]generated.ArgumentDefinition, 0, len(def.Args))
		for _, arg := range def.Args {
			args = append(args, generated.ArgumentDefinition{
				Name:        arg.Name,
				Type:        arg.Type,
				Required:    arg.Required,
				Description: arg.Description,
			})
		}

		actions = append(actions, generated.ActionDefinition{
			Name:        def.Name,
			Description: def.Description,
			Args:        args,
		})
	}

	return actions
}

// convertActionResult はアクション実行結果を生成されたスキーマに変換する
func convertActionResult(result *node.ActionResult) generated.ActionResult {
	converted := generated.ActionResult{
		ActionId:       result.ActionID,
		ActionName:     result.ActionName,
		Status:         convertActionStatus(result.Status),
		ImageAvailable: result.HasImage(),
		StartedAt:      result.StartedAt,
		CompletedAt:    result.CompletedAt,
	}

	if len(result.Data) > 0 {
		converted.Data = &result.Data
	}

	if len(result.Errors) > 0 {
		converted.Errors = &result.Errors
	}

	return converted
}

// convertActionStatus はアクションステータスを変換する
func convertActionStatus(status node.ActionStatus) generated.ActionResultStatus {
	switch status {
	case node.ActionSucceeded:
		return generated.Succeeded
	default:
		return generated.Failed
	}
}

// stringPtr は文字列のポインタを返すヘルパー関数
func stringPtr(s string) *string {
	return &s
}
