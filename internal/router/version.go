package router

import (
	"net/http"
	"runtime/debug"

	"github.com/fundledger/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Overridden at build time with -ldflags "-X".
var version = "0.0.0"

type VersionResponse struct {
	Data Build `json:"data"`
}

// Build identifies the running binary.
type Build struct {
	Version   string `json:"version" example:"1.4.0"`                // Release version
	Revision  string `json:"revision,omitempty" example:"3f1c9e2"`   // VCS revision the binary was built from, if known
	GoVersion string `json:"goVersion,omitempty" example:"go1.25.5"` // Go toolchain used for the build
	Modified  bool   `json:"modified,omitempty" example:"false"`     // The working tree had uncommitted changes at build time
}

func currentBuild() Build {
	b := Build{Version: version}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}

	b.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Revision = s.Value
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}

	return b
}

//	@Summary		API version
//	@Description	Returns the version and build information of the running backend
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{Data: currentBuild()})
}

//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}
