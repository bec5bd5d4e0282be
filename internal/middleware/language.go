package middleware

import "github.com/gin-gonic/gin"

// supportedLanguages for the lang request header.
var supportedLanguages = []string{"en", "ar"}

// LangKey is the context key the language middleware sets.
const LangKey = "lang"

// Language reads the lang header. Absent defaults to ar; an unrecognized
// value falls back to en.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.GetHeader("lang")
		if lang == "" {
			lang = "ar"
		}
		supported := false
		for _, l := range supportedLanguages {
			if l == lang {
				supported = true
				break
			}
		}
		if !supported {
			lang = "en"
		}
		c.Set(LangKey, lang)
		c.Next()
	}
}
