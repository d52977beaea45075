//go:build linux

package mount

import (
	"os"
	"strings"
)

// listMountPoints returns the mount points from /proc/mounts. Spaces in
// paths appear octal-escaped there.
func listMountPoints() ([]string, error) {
	data, err := os.ReadFile("/proc/mounts")
	if err != nil {
		return nil, err
	}

	var points []string
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		points = append(points, unescapeOctal(fields[1]))
	}
	return points, nil
}

func unescapeOctal(path string) string {
	replacer := strings.NewReplacer(
		`\040`, " ",
		`\011`, "\t",
		`\012`, "\n",
		`\134`, `\`,
	)
	return replacer.Replace(path)
}
