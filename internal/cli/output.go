package cli

import (
	"fmt"

	"github.com/vfg2006/snapchat-marketing-api/pkg/utils"
)

// printJSON escreve o valor como JSON indentado na saída do comando
func (a *App) printJSON(value any) error {
	out, err := utils.PrettyJson(value)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, out)
	return err
}
