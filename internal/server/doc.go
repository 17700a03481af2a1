// Package server は、カメラノードのREST APIを提供します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// アクション要求の受付、ストリーミング配信を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - アクション要求のノードへのディスパッチ
//   - ノード定義・状態・実行結果の公開
//   - スナップショットとMJPEGストリーミングの配信
//   - 管理コマンドの受付
//
// 仕様:
//   - ルーティングはgin + oapi-codegenの生成コードを使用
//   - グレースフルシャットダウンに対応
//   - shutdownコマンド受信時はサーバー自身を停止する
package server
