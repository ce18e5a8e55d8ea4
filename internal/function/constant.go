package function

const (
	LogPrefixDispatch = "function.Registry.Dispatch"

	NameExit       = "handle_exit_intent"
	NameChangeRole = "change_role"
	NamePlayMusic  = "play_music"

	defaultGoodbye = "Goodbye!"
	randomSong     = "random"
)
