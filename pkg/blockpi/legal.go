package blockpi

// LegalNotice provides license notices for blockpi itself and any third-party
// dependencies.
const LegalNotice = `blockpi

Licensed under the terms of the MIT License. A copy of this license can be found
online at https://opensource.org/licenses/MIT.


================================================================================
blockpi depends on the following third-party software:
================================================================================

Go, the Go standard library, and the Go crypto, sys, and term subrepositories.

https://golang.org/
https://github.com/golang/

Copyright (c) 2009 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version). A templated
version of this license can be found online at
https://opensource.org/licenses/BSD-3-Clause.

--------------------------------------------------------------------------------

errors

https://github.com/pkg/errors

Copyright (c) 2015, Dave Cheney <dave@cheney.net>
All rights reserved.

Used under the terms of the 2-Clause BSD License. A copy of this license can be
found online at https://opensource.org/licenses/BSD-2-Clause.

--------------------------------------------------------------------------------

Cobra

https://github.com/spf13/cobra

Copyright 2013 Steve Francia <spf@spf13.com>

Used under the terms of the Apache License, Version 2.0. A copy of this license can be
found online at http://www.apache.org/licenses/LICENSE-2.0.

--------------------------------------------------------------------------------

pflag

https://github.com/spf13/pflag

Copyright (c) 2012 Alex Ogier. All rights reserved.
Copyright (c) 2012 The Go Authors. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version). A copy of this license can be
found online at https://opensource.org/licenses/BSD-3-Clause.

--------------------------------------------------------------------------------

humanize

https://github.com/dustin/go-humanize

Copyright (c) 2005-2008  Dustin Sallings <dustin@spy.net>

Used under the terms of the MIT License. A copy of this license can be
found online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

mousetrap

https://github.com/inconshreveable/mousetrap

Copyright 2014 Alan Shreve

Used under the terms of the Apache License, Version 2.0. A copy of this license can be
found online at http://www.apache.org/licenses/LICENSE-2.0.

--------------------------------------------------------------------------------

color

https://github.com/fatih/color

Copyright (c) 2013 Fatih Arslan

Used under the terms of the MIT License. A copy of this license can be
found online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

go-colorable

https://github.com/mattn/go-colorable

Copyright (c) 2016 Yasuhiro Matsumoto

Used under the terms of the MIT License. A copy of this license can be
found online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

go-isatty

https://github.com/mattn/go-isatty

Copyright (c) Yasuhiro MATSUMOTO <mattn.jp@gmail.com>

Used under the terms of the MIT License. A copy of this license can be
found online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

uuid

https://github.com/google/uuid

Copyright (c) 2009,2014 Google Inc. All rights reserved.

Used under the terms of the 3-Clause BSD License (Google version). A copy of this license can be
found online at https://opensource.org/licenses/BSD-3-Clause.

--------------------------------------------------------------------------------

basex

https://github.com/eknkc/basex

Copyright (c) 2017 Ekin Koc

Used under the terms of the MIT License. A copy of this license can be
found online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

godotenv

https://github.com/joho/godotenv

Copyright (c) 2013 John Barton

Used under the terms of the MIT License. A copy of this license can be
found online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

yaml

https://github.com/go-yaml/yaml

Copyright 2011-2016 Canonical Ltd.

Used under the terms of the Apache License, Version 2.0. A copy of this license can be
found online at http://www.apache.org/licenses/LICENSE-2.0.

--------------------------------------------------------------------------------

sonnet

https://github.com/sugawarayuuta/sonnet

Copyright (c) 2023 sugawarayuuta

Used under the terms of the MIT License. A copy of this license can be
found online at https://opensource.org/licenses/MIT.

--------------------------------------------------------------------------------

gopass

https://github.com/howeyc/gopass

Forked and modified at https://github.com/mutagen-io/gopass.

Copyright (c) 2012 Chris Howey

Portions of this package are derived from Solaris sources distributed under the
Common Development and Distribution License, Version 1.0. These portions are
consequently released under the same license. Copies of the license are
available in the above repositories.

The remainder of the package is used under the terms of the ISC License. A copy
of this license can be found online at https://opensource.org/licenses/ISC.
`
