//go:build darwin

package mount

import (
	"os/exec"
	"strings"
)

// listMountPoints parses the output of mount(8), which prints lines of
// the form "/dev/disk1s1 on /Volumes/NAS (apfs, local)".
func listMountPoints() ([]string, error) {
	out, err := exec.Command("/sbin/mount").Output()
	if err != nil {
		return nil, err
	}

	var points []string
	for _, line := range strings.Split(string(out), "\n") {
		idx := strings.Index(line, " on ")
		if idx < 0 {
			continue
		}
		rest := line[idx+len(" on "):]
		paren := strings.LastIndex(rest, " (")
		if paren < 0 {
			continue
		}
		points = append(points, rest[:paren])
	}
	return points, nil
}
