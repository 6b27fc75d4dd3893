package usecase

import (
	"fmt"

	imagedomain "seoprofil-backend/internal/image/domain"
)

const basePrompt = "professional photography, ultra-realistic, 4K UHD resolution, shallow depth of field, soft natural lighting, high dynamic range, sharp focus, bokeh background, cinematic composition, wide aspect ratio"

// BuildImagePrompt wraps the user's input in the fixed photography brief and
// picks the pixel size for the requested format. Header images are wide web
// banners, Kachel images are square tiles.
func BuildImagePrompt(userInput, imageType string) (prompt, size string) {
	formatRatio := "(16:9)"
	formatText := "web header format"
	size = "1536x1024"

	if imageType == imagedomain.TypeKachel {
		formatRatio = "(4:3)"
		formatText = "editorial layout"
		size = "1024x1024"
	}

	prompt = fmt.Sprintf("%s %s, %s, color graded like editorial magazine, taken with DSLR or mirrorless camera (Canon EOS R5 / Sony A7R IV), %s",
		basePrompt, formatRatio, formatText, userInput)
	return prompt, size
}
