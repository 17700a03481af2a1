// Package node オーケストレータ配下のノードとしての中核機能を担う
//
// # 責務
// - ノード定義（ID・名前・アクションカタログ）の提供
// - 名前付きアクションのディスパッチと実行結果の保持
// - 起動処理（リソーステンプレート登録・カメラ接続）
// - 状態ハンドラの周期実行とノード状態の公開
// - 管理コマンド（lock/unlock/reset/shutdown）の処理
//
// # 仕様
// - アクションは登録されたレジストリ経由で名前解決される
// - ロック中のノードはアクションの実行を拒否する
// - 実行結果は設定された件数だけ保持し、古いものから画像ファイル
//   ごと破棄される
package node
