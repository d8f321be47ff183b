package i18n

import (
	"sort"
	"strings"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "part" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg := t.lookup(code)
	if msg == "" {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", data[k])
	}
	// Substituted values are never expanded again.
	return strings.NewReplacer(pairs...).Replace(msg)
}

func (t dictTranslator) lookup(code string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "duplicate_part":
			return "要素、ID、疑似要素はセレクタ内で一度しか使用できません"
		case "out_of_order_part":
			return "セレクタの各部分は 要素、ID、クラス、属性、疑似クラス、疑似要素 の順に並べてください"
		case "combined_selector":
			return "結合済みのセレクタには部分を追加できません"
		case "unknown_category":
			return "未知のセレクタ区分です: {category}"
		case "parse_error":
			return "解析エラー"
		case "duplicate_key":
			return "キーが重複しています: {key}"
		case "invalid_type":
			return "型が不正です: {key}"
		case "required":
			return "必須プロパティが不足しています: {key}"
		case "unknown_type":
			return "未登録の型です: {type}"
		case "too_big":
			return "入力が大きすぎます"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "duplicate_part":
			return "Element, id and pseudo-element should not occur more then one time inside the selector"
		case "out_of_order_part":
			return "Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element"
		case "combined_selector":
			return "combined selectors cannot be extended with compound parts"
		case "unknown_category":
			return "unknown selector category: {category}"
		case "parse_error":
			return "parse error"
		case "duplicate_key":
			return "key '{key}' duplicated"
		case "invalid_type":
			return "invalid type for '{key}'"
		case "required":
			return "required property '{key}' missing"
		case "unknown_type":
			return "no decoder registered for type '{type}'"
		case "too_big":
			return "input too big"
		case "truncated":
			return "truncated"
		}
	}
	return ""
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
