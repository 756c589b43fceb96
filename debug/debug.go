package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Edit    bool
	Move    bool
	Group   bool
	History bool
	Server  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Edit = boolEnv("JEDIT_DEBUG_EDIT")
	d.Move = boolEnv("JEDIT_DEBUG_MOVE")
	d.Group = boolEnv("JEDIT_DEBUG_GROUP")
	d.History = boolEnv("JEDIT_DEBUG_HISTORY")
	d.Server = boolEnv("JEDIT_DEBUG_SERVER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Edit() bool {
	return d.Edit
}
func Move() bool {
	return d.Move || d.Edit
}
func Group() bool {
	return d.Group || d.Edit
}
func History() bool {
	return d.History || d.Edit
}
func Server() bool {
	return d.Server
}
