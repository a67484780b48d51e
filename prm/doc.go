/*
 * doc.go, part of emc2lt
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package prm reads EMC force-field parameter files (.prm). A prm file is a
sequence of sections, each opened by an "ITEM <KEYWORD>" line and closed by
"ITEM END". The DEFINE section holds scalar keyword/value settings for the
whole force field, the rest hold whitespace-separated data rows.

The package only tokenizes. Rows are kept as they are in the file, so a
malformed row is only detected by whoever interprets it. The one check done
here is that several files describe the same force field (see Consistent).
*/
package prm
