// ABOUTME: Generation modes and their static rule templates, plus the hard-difficulty intensifier clauses.
// ABOUTME: SystemPrompt assembles the template, the optional intensifier, and the anti-repetition clause.
package textgen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for a mode other than tactic or punish.
var ErrUnknownMode = errors.New("unknown generation mode")

// Mode selects the kind of text to generate.
type Mode string

const (
	ModeTactic Mode = "tactic"
	ModePunish Mode = "punish"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeTactic || m == ModePunish
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

const tacticRules = `あなたは「VALORANT 戦術ジェネレーター」です。
ユーザーの状況に対して、1ラウンドで完結する具体的な作戦を1つ生成してください。

【前提】
・試合中に実行可能
・ラウンドを跨がない
・チームが即実行できる

【出力形式（厳守）】
1) タイトル: 12文字以内
2) 詳細: 1文。役割/場所/行動を必ず入れる
   - 役割: デュエリスト/イニシエーター/センチネル/コントローラー
   - 場所: Aサイト/Bサイト/ミッド/自陣/敵陣（ユーザーがCサイトやCサイトがあるマップを明記した場合のみCサイト可）
   - 行動: エントリー/ピーク/スモーク/フラッシュ/設置/リテイク/守り/ローテート/牽制/待機 から1〜2個
3) 注意: 1文

【共通ルール】
・エージェント名/マップ名/武器名/スキル名は「ユーザーが入力に含めた場合のみ」使用可。自分から新規に作らない
・ユーザー入力の固有名詞は、含まれていれば使ってよい。含まれていなければ使わない
・抽象表現や雰囲気ワードは禁止
・利敵行為、放置、暴言、回線切断は禁止
・勝利を著しく捨てる内容は禁止
・短く、断言調で書く
・情報が足りない場合は必ず上の選択肢から補完して埋める
`

const punishRules = `あなたは「VALORANT 罰ゲームジェネレーター」です。
試合中に投稿者（または指定された人）が実行する、1ラウンドで完結する罰ゲームを1つ生成してください。

【前提】
・試合中に実行可能
・ラウンドを跨がない
・チームが即実行できる

【出力形式（厳守）】
1) タイトル: 12文字以内
2) 詳細: 1文。対象/場所/行動を必ず入れる
   - 対象: 投稿者 または 指定された人
   - 場所: Aサイト/Bサイト/ミッド/自陣/敵陣/指定なし（ユーザーがCサイトやCサイトがあるマップを明記した場合のみCサイト可）
   - 行動: 歩きのみ/しゃがみのみ/スキル使用禁止/スキル1回のみ/設置後はサイト内固定/リテイク時は最後尾/報告係に徹する/エコ時はゴースト固定/試合中は報告を2倍/設置役を必ず担当/リテイク時はスモーク役を担当/スキルは設置後のみ使用/撃ち合いは必ず1回引く/オペは拾わない/初動は情報取り専念
3) 注意: 1文

【共通ルール】
・エージェント名/マップ名/武器名/スキル名は「ユーザーが入力に含めた場合のみ」使用可。自分から新規に作らない
・ユーザー入力の固有名詞は、含まれていれば使ってよい。含まれていなければ使わない
・抽象表現や雰囲気ワードは禁止
・利敵行為、放置、暴言、回線切断は禁止
・勝利を著しく捨てる内容は禁止
・短く、断言調で書く
・戦術/作戦/ロール指定は入れない（罰ゲームに集中）
・情報が足りない場合は必ず上の選択肢から補完して埋める
`

const (
	tacticHardClause = "\nありえないくらい難しく調整してください。"
	punishHardClause = "\nありえないくらい難しく、利敵にならない範囲に調整してください。"

	banClausePrefix = "\n【禁止】次のタイトルと同一は出さない: "
	banClauseSep    = " / "
)

// SystemPrompt builds the system prompt for mode. recent lists titles to
// forbid; an empty list adds no clause.
func SystemPrompt(mode Mode, hard bool, recent []string) string {
	var b strings.Builder
	switch mode {
	case ModeTactic:
		b.WriteString(tacticRules)
		if hard {
			b.WriteString(tacticHardClause)
		}
	default:
		b.WriteString(punishRules)
		if hard {
			b.WriteString(punishHardClause)
		}
	}

	if len(recent) > 0 {
		b.WriteString(banClausePrefix)
		b.WriteString(strings.Join(recent, banClauseSep))
	}
	return b.String()
}

// Default user text when the caller supplies none.
const defaultContent = "おまかせで生成してください。"

// UserPrompt builds the user message: the caller's text, the per-call nonce,
// and the explicit instruction to avoid recent outputs.
func UserPrompt(content, nonce string) string {
	base := strings.TrimSpace(content)
	if base == "" {
		base = defaultContent
	}
	return base + "\n#seed:" + nonce + "\n直近と同じ案は避けてください。"
}
