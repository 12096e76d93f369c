package showcase

// CanMutate reports whether identity may modify content: admins always may,
// otherwise only the owner. The target record must already be loaded; the
// check compares against its stored owner, never against request input.
func CanMutate(identity Identity, content *Content) bool {
	if identity.IsAdmin() {
		return true
	}
	return identity.ID == content.Owner.ID
}
