package harness

import (
	"fmt"
	"os"
)

const db = "db"

var (
	HostRootPath = fmt.Sprintf("%s/.return-test", os.Getenv("HOME"))
	DBFilename   = fmt.Sprintf("%s/%s", HostRootPath, db)
)
