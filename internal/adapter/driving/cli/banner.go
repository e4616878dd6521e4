package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/datidev/aws-cost-calculator-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
          /$$$$$$  /$$      /$$  /$$$$$$         /$$$$$$            /$$
         /$$__  $$| $$  /$ | $$ /$$__  $$       /$$__  $$          | $$
        | $$  \ $$| $$ /$$$| $$| $$  \__/      | $$  \__/  /$$$$$$ | $$  /$$$$$$$
        | $$$$$$$$| $$/$$ $$ $$|  $$$$$$       | $$       |____  $$| $$ /$$_____/
        | $$__  $$| $$$$_  $$$$ \____  $$      | $$        /$$$$$$$| $$| $$
        | $$  | $$| $$$/ \  $$$ /$$  \ $$      | $$    $$ /$$__  $$| $$| $$
        | $$  | $$| $$/   \  $$|  $$$$$$/      |  $$$$$$/|  $$$$$$$| $$|  $$$$$$$
        |__/  |__/|__/     \__/ \______/        \______/  \_______/|__/ \_______/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Cost Calculator CLI (v%s)", formattedVersion)))
}
