package commands

import (
	"os"

	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("media gallery error", "err", err.Error())
	os.Exit(1)
}
