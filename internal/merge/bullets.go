// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package merge

import "strings"

// ParseBullets splits a textarea value into one bullet per non-blank line.
// Leading list markers ("-", "*", "•") are stripped. Empty text yields an
// empty, non-nil list.
func ParseBullets(text string) []string {
	bullets := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	return bullets
}
