package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/bjk2k/red-panda/pkg/ui/styles"
)

// BannerText is what the banner spells out
const BannerText = "red panda"

// Banner writes the ASCII-art banner on terminals and a single plain line
// otherwise.
func Banner(w io.Writer, format Format, version string) error {
	if format.Resolve(w) != FormatTerminal {
		_, err := fmt.Fprintf(w, "%s %s\n", BannerText, version)
		return err
	}

	art, err := pterm.DefaultBigText.
		WithLetters(putils.LettersFromString(BannerText)).
		Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, styles.GetStyle("Banner").Render(art))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, styles.GetStyle("Note").Render(version))
	return err
}
