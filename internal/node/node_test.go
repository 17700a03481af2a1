package node

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"sync"
	"testing"
	"time"

	"camnode/internal/barcode"
	"camnode/internal/camera"
	"camnode/internal/config"
)

// fakeDevice はテスト用のキャプチャデバイス
// 状態ループと並行にアクセスされるため、フィールドはミューテックスで保護する
type fakeDevice struct {
	mu     sync.Mutex
	opened bool
	props  map[camera.Property]float64
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		opened: true,
		props:  make(map[camera.Property]float64),
	}
}

func (d *fakeDevice) IsOpened() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opened
}

func (d *fakeDevice) setOpened(opened bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opened = opened
}

func (d *fakeDevice) Read() (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img, nil
}

func (d *fakeDevice) Discard(_ int) {}

func (d *fakeDevice) Set(p camera.Property, value float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.props[p] = value
}

func (d *fakeDevice) Get(p camera.Property) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.props[p]
}

func (d *fakeDevice) Close() error {
	d.setOpened(false)
	return nil
}

// fakeDecoder はテスト用のバーコードデコーダ
type fakeDecoder struct {
	value string
	err   error
}

func (d *fakeDecoder) Decode(_ image.Image) (string, error) {
	return d.value, d.err
}

// newTestNode はテスト用のNodeを作成する
func newTestNode(t *testing.T, decoder barcode.Decoder) (*Node, *fakeDevice) {
	t.Helper()

	device := newFakeDevice()
	opener := func() (camera.Device, error) {
		device.setOpened(true)
		return device, nil
	}
	cam := camera.NewInterface(opener, t.TempDir())

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 2000},
		Node: config.NodeConfig{
			Name:          "test_camera_node",
			StateInterval: 10 * time.Millisecond,
			ResultHistory: 100,
		},
		Camera: config.CameraConfig{Address: "0", StreamFPS: 10},
	}

	return New(cfg, cam, decoder, nil), device
}

func TestNode_Definition(t *testing.T) {
	n, _ := newTestNode(t, &fakeDecoder{})

	def := n.Definition()
	if def.NodeID == "" {
		t.Error("ノードIDが設定されていません")
	}
	if def.NodeName != "test_camera_node" {
		t.Errorf("ノード名が不正: %s", def.NodeName)
	}
	if def.ModuleName != ModuleName {
		t.Errorf("モジュール名が不正: %s", def.ModuleName)
	}

	// アクションカタログの確認
	if len(def.Actions) != 2 {
		t.Fatalf("アクション数が不正: got %d, want 2", len(def.Actions))
	}
	if def.Actions[0].Name != "take_picture" || def.Actions[1].Name != "read_barcode" {
		t.Errorf("アクションカタログが不正: %+v", def.Actions)
	}
}

func TestNode_StartupAndState(t *testing.T) {
	ctx := context.Background()
	n, device := newTestNode(t, &fakeDecoder{})

	if err := n.Startup(ctx); err != nil {
		t.Fatalf("Startupに失敗: %v", err)
	}

	state := n.State()
	if state.CameraStatus != camera.StatusConnected {
		t.Errorf("起動後のカメラ状態が不正: %s", state.CameraStatus)
	}
	if state.Locked {
		t.Error("起動直後にロックされています")
	}

	// 停止でカメラが解放される
	if err := n.Stop(); err != nil {
		t.Fatalf("Stopに失敗: %v", err)
	}
	if device.IsOpened() {
		t.Error("停止後もデバイスが開かれています")
	}
}

func TestNode_TakePicture(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNode(t, &fakeDecoder{})

	if err := n.Startup(ctx); err != nil {
		t.Fatalf("Startupに失敗: %v", err)
	}

	result, err := n.RunAction(ctx, "take_picture", ActionArgs{})
	if err != nil {
		t.Fatalf("RunActionに失敗: %v", err)
	}

	if result.Status != ActionSucceeded {
		t.Fatalf("アクションが失敗しました: %+v", result)
	}
	if !result.HasImage() {
		t.Fatal("撮影画像が記録されていません")
	}
	if _, err := os.Stat(result.ImagePath); err != nil {
		t.Errorf("撮影画像ファイルが存在しません: %v", err)
	}

	// 実行結果が保持されている
	stored, ok := n.GetResult(result.ActionID)
	if !ok {
		t.Fatal("実行結果が保持されていません")
	}
	if stored.ActionName != "take_picture" {
		t.Errorf("保持された結果のアクション名が不正: %s", stored.ActionName)
	}
}

func TestNode_ReadBarcode(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNode(t, &fakeDecoder{value: "LAB-SAMPLE-0042"})

	if err := n.Startup(ctx); err != nil {
		t.Fatalf("Startupに失敗: %v", err)
	}

	result, err := n.RunAction(ctx, "read_barcode", ActionArgs{})
	if err != nil {
		t.Fatalf("RunActionに失敗: %v", err)
	}

	if result.Status != ActionSucceeded {
		t.Fatalf("アクションが失敗しました: %+v", result)
	}
	if result.Data["barcode"] != "LAB-SAMPLE-0042" {
		t.Errorf("バーコード値が不正: %v", result.Data["barcode"])
	}
	if !result.HasImage() {
		t.Error("撮影画像が記録されていません")
	}
}

func TestNode_ReadBarcodeNotFound(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNode(t, &fakeDecoder{value: ""})

	if err := n.Startup(ctx); err != nil {
		t.Fatalf("Startupに失敗: %v", err)
	}

	result, err := n.RunAction(ctx, "read_barcode", ActionArgs{})
	if err != nil {
		t.Fatalf("RunActionに失敗: %v", err)
	}

	// バーコードなしでもアクションは成功する
	if result.Status != ActionSucceeded {
		t.Fatalf("バーコードなしでアクションが失敗しました: %+v", result)
	}
	if result.Data["barcode"] != "" {
		t.Errorf("バーコード値が不正: %v", result.Data["barcode"])
	}
}

func TestNode_ActionFailure(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNode(t, &fakeDecoder{err: errors.New("decode error")})

	if err := n.Startup(ctx); err != nil {
		t.Fatalf("Startupに失敗: %v", err)
	}

	result, err := n.RunAction(ctx, "read_barcode", ActionArgs{})
	if err != nil {
		t.Fatalf("RunActionに失敗: %v", err)
	}

	if result.Status != ActionFailed {
		t.Errorf("デコード失敗時のステータスが不正: %s", result.Status)
	}
	if len(result.Errors) == 0 {
		t.Error("エラー内容が記録されていません")
	}
}

func TestNode_UnknownAction(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNode(t, &fakeDecoder{})

	if err := n.Startup(ctx); err != nil {
		t.Fatalf("Startupに失敗: %v", err)
	}

	if _, err := n.RunAction(ctx, "no_such_action", ActionArgs{}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("未知のアクションエラーが返されませんでした: %v", err)
	}
}

func TestNode_LockUnlock(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNode(t, &fakeDecoder{})

	if err := n.Startup(ctx); err != nil {
		t.Fatalf("Startupに失敗: %v", err)
	}

	// ロック中はアクションが拒否される
	if err := n.Admin(AdminLock); err != nil {
		t.Fatalf("lockに失敗: %v", err)
	}
	if !n.State().Locked {
		t.Error("ロック後の状態が不正")
	}
	if _, err := n.RunAction(ctx, "take_picture", ActionArgs{}); !errors.Is(err, ErrNodeLocked) {
		t.Errorf("ロック中のアクションが拒否されませんでした: %v", err)
	}

	// ロック解除後は実行できる
	if err := n.Admin(AdminUnlock); err != nil {
		t.Fatalf("unlockに失敗: %v", err)
	}
	if _, err := n.RunAction(ctx, "take_picture", ActionArgs{}); err != nil {
		t.Errorf("ロック解除後のアクションに失敗: %v", err)
	}
}

func TestNode_Reset(t *testing.T) {
	ctx := context.Background()
	n, device := newTestNode(t, &fakeDecoder{})

	if err := n.Startup(ctx); err != nil {
		t.Fatalf("Startupに失敗: %v", err)
	}

	// デバイスが失われた状況を作る
	device.setOpened(false)

	// resetで再接続される
	if err := n.Admin(AdminReset); err != nil {
		t.Fatalf("resetに失敗: %v", err)
	}
	if n.State().CameraStatus != camera.StatusConnected {
		t.Error("再接続後のカメラ状態が不正")
	}
}

func TestNode_Shutdown(t *testing.T) {
	n, _ := newTestNode(t, &fakeDecoder{})

	select {
	case <-n.ShutdownRequested():
		t.Fatal("停止要求前にチャンネルがクローズされています")
	default:
	}

	if err := n.Admin(AdminShutdown); err != nil {
		t.Fatalf("shutdownに失敗: %v", err)
	}

	select {
	case <-n.ShutdownRequested():
	case <-time.After(time.Second):
		t.Fatal("停止要求が通知されませんでした")
	}

	// 二重shutdownはpanicしない
	if err := n.Admin(AdminShutdown); err != nil {
		t.Errorf("二重shutdownでエラーが発生しました: %v", err)
	}
}

func TestResultStore_Retention(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNode(t, &fakeDecoder{})
	n.results = newResultStore(2)

	if err := n.Startup(ctx); err != nil {
		t.Fatalf("Startupに失敗: %v", err)
	}

	// 上限を超えて実行する
	var results []*ActionResult
	for i := 0; i < 3; i++ {
		result, err := n.RunAction(ctx, "take_picture", ActionArgs{})
		if err != nil {
			t.Fatalf("RunActionに失敗: %v", err)
		}
		results = append(results, result)
	}

	if n.results.Len() != 2 {
		t.Errorf("保持件数が不正: got %d, want 2", n.results.Len())
	}

	// 最古の結果は破棄され、画像ファイルも削除される
	if _, ok := n.GetResult(results[0].ActionID); ok {
		t.Error("最古の結果が破棄されていません")
	}
	if _, err := os.Stat(results[0].ImagePath); !os.IsNotExist(err) {
		t.Error("最古の撮影画像が削除されていません")
	}

	// 新しい結果は保持されている
	if _, ok := n.GetResult(results[2].ActionID); !ok {
		t.Error("最新の結果が保持されていません")
	}
}

func TestNode_StateLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n, device := newTestNode(t, &fakeDecoder{})
	if err := n.Startup(ctx); err != nil {
		t.Fatalf("Startupに失敗: %v", err)
	}

	n.Start(ctx)

	// デバイスが失われると状態ハンドラがdisconnectedに更新する
	device.setOpened(false)

	deadline := time.After(time.Second)
	for n.State().CameraStatus != camera.StatusDisconnected {
		select {
		case <-deadline:
			t.Fatal("状態がdisconnectedに更新されませんでした")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if err := n.Stop(); err != nil {
		t.Fatalf("Stopに失敗: %v", err)
	}
}
