package node

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"camnode/internal/barcode"
	"camnode/internal/camera"
	"camnode/internal/config"
	"camnode/internal/resource"
)

// ErrNodeLocked はロック中のノードへのアクション要求エラー
var ErrNodeLocked = errors.New("ノードはロックされています")

// ErrUnknownAction は未登録のアクション名が指定されたときのエラー
var ErrUnknownAction = errors.New("未知のアクションです")

// AdminCommand は管理コマンドを表す
type AdminCommand string

const (
	AdminLock     AdminCommand = "lock"     // アクションの受付を停止する
	AdminUnlock   AdminCommand = "unlock"   // アクションの受付を再開する
	AdminReset    AdminCommand = "reset"    // カメラを再接続する
	AdminShutdown AdminCommand = "shutdown" // ノードを停止する
)

// Node はカメラノードの中核
// アクションのディスパッチ・状態管理・ライフサイクルを担う
type Node struct {
	cfg       *config.Config
	camera    *camera.Interface
	decoder   barcode.Decoder
	resources *resource.Client

	definition Definition
	actions    map[string]actionFunc
	results    *resultStore

	mu     sync.RWMutex
	locked bool
	state  State

	stopCh     chan struct{}
	wg         sync.WaitGroup
	shutdownCh chan struct{}
	shutdown   sync.Once
}

// New は新しいNodeを作成する
// resourcesはnilでもよい（リソーステンプレートの登録をスキップする）
func New(cfg *config.Config, cam *camera.Interface, decoder barcode.Decoder, resources *resource.Client) *Node {
	n := &Node{
		cfg:        cfg,
		camera:     cam,
		decoder:    decoder,
		resources:  resources,
		results:    newResultStore(cfg.Node.ResultHistory),
		stopCh:     make(chan struct{}),
		shutdownCh: make(chan struct{}),
	}

	n.registerActions()

	n.definition = Definition{
		NodeID:        uuid.New().String(),
		NodeName:      cfg.Node.Name,
		ModuleName:    ModuleName,
		ModuleVersion: ModuleVersion,
		Actions:       n.actionDefinitions(),
	}

	return n
}

// Definition はノードの定義情報を返す
func (n *Node) Definition() Definition {
	return n.definition
}

// State はノードの現在状態を返す
func (n *Node) State() State {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.state
}

// Startup はノードの起動処理を実行する
//
// リソーステンプレートの登録に失敗してもノードは起動を続ける
// （リソースマネージャは補助的な外部サービスのため）
// カメラへの接続失敗は起動エラーとなる
func (n *Node) Startup(ctx context.Context) error {
	if n.resources != nil {
		if err := n.bootstrapResources(ctx); err != nil {
			log.Printf("リソーステンプレートの登録に失敗（継続します）: %v", err)
		}
	}

	if err := n.camera.Connect(); err != nil {
		return fmt.Errorf("起動処理に失敗: %w", err)
	}

	n.updateState()
	log.Println("カメラノードを初期化しました")
	return nil
}

// Start は状態ハンドラの周期実行を開始する
func (n *Node) Start(ctx context.Context) {
	n.wg.Add(1)
	go n.stateLoop(ctx)
}

// Stop はノードを停止してカメラを解放する
func (n *Node) Stop() error {
	close(n.stopCh)
	n.wg.Wait()

	if err := n.camera.Disconnect(); err != nil {
		return fmt.Errorf("ノードの停止に失敗: %w", err)
	}

	return nil
}

// ShutdownRequested は管理コマンドによる停止要求を通知するチャンネルを返す
func (n *Node) ShutdownRequested() <-chan struct{} {
	return n.shutdownCh
}

// Admin は管理コマンドを実行する
func (n *Node) Admin(command AdminCommand) error {
	switch command {
	case AdminLock:
		n.mu.Lock()
		n.locked = true
		n.mu.Unlock()
		log.Println("ノードをロックしました")

	case AdminUnlock:
		n.mu.Lock()
		n.locked = false
		n.mu.Unlock()
		log.Println("ノードのロックを解除しました")

	case AdminReset:
		log.Println("カメラを再接続します")
		if err := n.camera.Connect(); err != nil {
			return fmt.Errorf("カメラの再接続に失敗: %w", err)
		}

	case AdminShutdown:
		log.Println("停止要求を受け付けました")
		n.shutdown.Do(func() {
			close(n.shutdownCh)
		})

	default:
		return fmt.Errorf("未知の管理コマンド: %s", command)
	}

	n.updateState()
	return nil
}

// Locked はノードがロックされているかを返す
func (n *Node) Locked() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.locked
}

// CaptureFrame はスナップショット用に1フレームを取得する
func (n *Node) CaptureFrame() ([]byte, error) {
	return n.camera.ReadFrame()
}

// Devices はシステム内のカメラデバイスを検出する
func (n *Node) Devices(ctx context.Context) ([]string, error) {
	return camera.ScanDevices(ctx)
}

// GetResult はActionIDでアクションの実行結果を取得する
func (n *Node) GetResult(actionID string) (*ActionResult, bool) {
	return n.results.Get(actionID)
}

// bootstrapResources は撮影デッキのリソーステンプレートを登録し、
// このノード用のデッキリソースを作成する
func (n *Node) bootstrapResources(ctx context.Context) error {
	captureDeck := resource.Slot{
		ResourceName:  "camera_capture_deck",
		ResourceClass: "CameraCaptureDeck",
		Capacity:      1,
		Attributes: map[string]interface{}{
			"slot_type":   "capture_deck",
			"can_capture": true,
			"light":       "on",
			"description": "撮影対象を置くカメラ撮影デッキ",
		},
	}

	template := resource.Template{
		TemplateName:      "camera_capture_deck_slot",
		Description:       "カメラ撮影デッキスロットのテンプレート。撮影対象を置く位置を表す",
		Resource:          captureDeck,
		RequiredOverrides: []string{"resource_name"},
		Tags:              []string{"camera", "capture", "deck", "slot", "imaging"},
		CreatedBy:         n.definition.NodeID,
		Version:           "1.0.0",
	}

	if err := n.resources.InitTemplate(ctx, template); err != nil {
		return err
	}

	deckName := "camera_capture_deck_" + n.cfg.Node.Name
	deck, err := n.resources.CreateResourceFromTemplate(ctx, template.TemplateName, deckName)
	if err != nil {
		return err
	}

	log.Printf("撮影デッキリソースを初期化しました: %s", deck.ResourceID)
	return nil
}

// stateLoop は状態ハンドラを周期実行する
func (n *Node) stateLoop(ctx context.Context) {
	defer n.wg.Done()

	ticker := time.NewTicker(n.cfg.Node.StateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-n.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.updateState()
		}
	}
}

// updateState はノード状態を更新する
func (n *Node) updateState() {
	status := n.camera.Status()

	n.mu.Lock()
	n.state = State{
		CameraStatus: status,
		Locked:       n.locked,
		UpdatedAt:    time.Now(),
	}
	n.mu.Unlock()

	if status == camera.StatusConnected {
		log.Println("カメラは動作中です")
	} else {
		log.Println("警告: カメラが接続されていません")
	}
}
