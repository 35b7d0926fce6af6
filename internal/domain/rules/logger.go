package rules

import "strings"

const (
	loggerDecl         = "private val logger = LoggerFactory"
	implicitLoggerDecl = "private implicit val logger = LoggerFactory"
)

// MarkLoggersImplicit makes logger declarations implicitly available.
// Literal substring replacement only; declarations already marked are
// untouched because the plain form no longer occurs in them.
func MarkLoggersImplicit(content string) string {
	return strings.ReplaceAll(content, loggerDecl, implicitLoggerDecl)
}
