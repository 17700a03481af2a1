package node

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"camnode/internal/camera"

	// 撮影画像のデコード用
	_ "image/jpeg"
)

// actionFunc は個別アクションの実装
// 実行結果はresultに書き込む
type actionFunc struct {
	definition ActionDefinition
	run        func(ctx context.Context, args ActionArgs, result *ActionResult) error
}

// registerActions はノードが提供するアクションを登録する
func (n *Node) registerActions() {
	n.actions = map[string]actionFunc{
		"take_picture": {
			definition: ActionDefinition{
				Name:        "take_picture",
				Description: "設定されたカメラで1枚撮影する。focusパラメータでフォーカスを指定できる",
				Args:        focusArgs(),
			},
			run: n.takePicture,
		},
		"read_barcode": {
			definition: ActionDefinition{
				Name:        "read_barcode",
				Description: "撮影した画像からバーコードを読み取る。必要に応じてフォーカスを調整できる",
				Args:        focusArgs(),
			},
			run: n.readBarcode,
		},
	}
}

// actionDefinitions は登録済みアクションの定義一覧を返す
func (n *Node) actionDefinitions() []ActionDefinition {
	// マップの順序に依存しないよう、登録名の固定順で返す
	names := []string{"take_picture", "read_barcode"}

	defs := make([]ActionDefinition, 0, len(names))
	for _, name := range names {
		defs = append(defs, n.actions[name].definition)
	}
	return defs
}

// RunAction は名前でアクションを解決して実行する
//
// ロック中のノードはErrNodeLockedを返す
// アクション自体の失敗はエラーではなく、Status=failedの結果として返す
func (n *Node) RunAction(ctx context.Context, name string, args ActionArgs) (*ActionResult, error) {
	if n.Locked() {
		return nil, ErrNodeLocked
	}

	action, ok := n.actions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}

	result := &ActionResult{
		ActionID:   uuid.New().String(),
		ActionName: name,
		Status:     ActionSucceeded,
		Data:       make(map[string]interface{}),
		StartedAt:  time.Now(),
	}

	log.Printf("アクション %s を実行します (action_id=%s)", name, result.ActionID)

	if err := action.run(ctx, args, result); err != nil {
		result.Status = ActionFailed
		result.Errors = append(result.Errors, err.Error())
		log.Printf("アクション %s が失敗しました: %v", name, err)
	}

	result.CompletedAt = time.Now()
	n.results.Add(result)

	return result, nil
}

// takePicture は1枚撮影して画像パスを結果に記録する
func (n *Node) takePicture(_ context.Context, args ActionArgs, result *ActionResult) error {
	settings := camera.FocusSettings{
		Focus:     args.Focus,
		AutoFocus: args.AutoFocus,
	}

	if args.Focus != nil || args.AutoFocus != nil {
		log.Println("フォーカス設定を調整します")
	}

	path, err := n.camera.TakePicture(settings)
	if err != nil {
		return err
	}

	result.ImagePath = path
	return nil
}

// readBarcode は撮影した画像からバーコードを読み取る
//
// バーコードが見つからない場合も結果は成功となり、
// barcodeフィールドには空文字列が入る
func (n *Node) readBarcode(ctx context.Context, args ActionArgs, result *ActionResult) error {
	if err := n.takePicture(ctx, args, result); err != nil {
		return err
	}

	file, err := os.Open(result.ImagePath)
	if err != nil {
		return fmt.Errorf("撮影画像のオープンに失敗: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	img, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("撮影画像のデコードに失敗: %w", err)
	}

	value, err := n.decoder.Decode(img)
	if err != nil {
		return err
	}

	result.Data["barcode"] = value
	return nil
}
