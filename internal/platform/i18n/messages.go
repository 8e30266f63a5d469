package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report message keys.
const (
	KeyReportSequence = "report.sequence"
	KeyReportResult   = "report.result"
	KeyReportPass     = "report.pass"
	KeyReportFail     = "report.fail"
)

func init() {
	lang := language.English
	message.SetString(lang, KeyReportSequence, "%s (%d bits)")
	message.SetString(lang, KeyReportResult, "%s: %.6f (%s)")
	message.SetString(lang, KeyReportPass, "pass")
	message.SetString(lang, KeyReportFail, "fail")

	lang = language.MustParse("pt-BR")
	message.SetString(lang, KeyReportSequence, "%s (%d bits)")
	message.SetString(lang, KeyReportResult, "%s: %.6f (%s)")
	message.SetString(lang, KeyReportPass, "aprovado")
	message.SetString(lang, KeyReportFail, "reprovado")
}
