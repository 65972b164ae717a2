/*
Package gifsalad remixes animated GIFs. An animation is split into frames,
every frame is run through a named effect on a pool of workers and the
filtered frames are encoded back into a GIF that keeps the timing and loop
count of the source.

A single effect name produces one animation under gifs/<name>/standard. The
"salad" and "random" modes produce one animation per effect in the catalog
under gifs/<name>/<mode>.
*/
package gifsalad

import "fmt"

type VersionInfo struct {
	Major, Minor, Patch uint
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var Version = VersionInfo{0, 3, 0}
