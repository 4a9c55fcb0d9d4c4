/*
Package sqldataset provides methods to load a dataset.Dataset
from a table in an SQL database.

Two backends are supported: SQLite3 database files (paths ending
in .db) and PostgreSQL databases (postgresql:// connection URLs).
Every column of the table becomes a feature of the dataset except
for an id column, which is ignored.
*/
package sqldataset
