package preview

// Package preview implements scoped staging of user-selected files before
// upload. A controller owns at most one staged resource at a time; creation
// and release are strictly paired so staged copies never leak, and rejected
// selections leave the previous resource untouched.
