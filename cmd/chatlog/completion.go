package main

import (
	"fmt"
	"io"
	"os"
)

func completionMain(args []string) {
	if err := writeCompletion(args, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func writeCompletion(args []string, out io.Writer) error {
	shell := "bash"
	if len(args) > 0 && args[0] != "" {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(out, bashCompletion)
	case "zsh":
		fmt.Fprint(out, zshCompletion)
	default:
		return fmt.Errorf("unsupported shell: %s (use bash or zsh)", shell)
	}
	return nil
}

const bashCompletion = `
_chatlog_completions()
{
    local cur prev
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "render dump view watch config features completion" -- "$cur") $(compgen -f -X '!*.json' -- "$cur") )
        return 0
    fi

    case "$prev" in
        --mode)
            COMPREPLY=( $(compgen -W "auto flat threaded" -- "$cur") )
            return 0
            ;;
        --color)
            COMPREPLY=( $(compgen -W "auto always never" -- "$cur") )
            return 0
            ;;
        --enable|--disable)
            COMPREPLY=( $(compgen -W "did_you_mean dump_before_render" -- "$cur") )
            return 0
            ;;
    esac

    case "${COMP_WORDS[1]}" in
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            ;;
        config)
            COMPREPLY=( $(compgen -W "show set color mode log_file copy features.did_you_mean features.dump_before_render" -- "$cur") )
            ;;
        render|view|watch)
            COMPREPLY=( $(compgen -W "--mode --copy" -- "$cur") $(compgen -f -X '!*.json' -- "$cur") )
            ;;
        *)
            COMPREPLY=( $(compgen -f -X '!*.json' -- "$cur") )
            ;;
    esac
}
complete -o filenames -F _chatlog_completions chatlog
`

const zshCompletion = `
#compdef chatlog
_chatlog() {
    local -a subcmds
    subcmds=('render:print the transcript' 'dump:print the JSON structure of an export' 'view:page through the transcript' 'watch:re-render when the export changes' 'config:show or set config values' 'features:list feature flags' 'completion:print shell completions')
    if (( CURRENT == 2 )); then
        _describe 'command' subcmds
        _files -g '*.json'
        return
    fi
    case "$words[2]" in
        completion)
            _values 'shell' bash zsh
            ;;
        config)
            _values 'action' show set
            ;;
        render|view|watch)
            _arguments \
                '--mode[Render mode]:mode:(auto flat threaded)' \
                '--copy[Copy the transcript to the clipboard]' \
                '*:export:_files -g "*.json"'
            ;;
        *)
            _files -g '*.json'
            ;;
    esac
}
_chatlog "$@"
`
