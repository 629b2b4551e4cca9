package ddsbatch

import "embed"

//go:embed topics/*.md
var topicFiles embed.FS
