// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed loads accounts and candidates from a YAML file at startup.

	accounts:
	  - username: admin
	    password: change-me
	    admin: true
	  - username: alice
	    password: alice-pw
	    phone_number: "+966500000001"
	candidates:
	  - name: Alice
	    party: Green
	    topic: Environment
	    image: /media/candidates/alice.png
	    owner: alice

Accounts are matched by username and candidates by name, so the file can
be applied on every start. Passwords in the file are hashed before they
are stored.
*/
package seed
